// Package domain derives DNS record guidance for pointing a custom domain
// at the hosted app, and keeps the custom-domain setting panel state.
package domain

import "strings"

type Kind uint8

const (
	Apex Kind = iota
	Subdomain
)

func (k Kind) String() string {
	if k == Subdomain {
		return "subdomain"
	}
	return "apex"
}

// Classify treats a name with more than two dot separated labels as a
// subdomain. Everything else, including names without any dot, is apex.
func Classify(domain string) Kind {
	if strings.Contains(domain, ".") && len(strings.Split(domain, ".")) > 2 {
		return Subdomain
	}
	return Apex
}

// HostLabel returns the part before the first dot.
func HostLabel(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	return label
}

// TargetHost strips the http(s) scheme from the app URL.
func TargetHost(appURL string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(appURL, scheme) {
			return strings.TrimPrefix(appURL, scheme)
		}
	}
	return appURL
}

// Copy item ids, one per copy affordance.
const (
	ItemCurrentURL = "current-url"
	ItemRecordType = "record-type"
	ItemHost       = "host"
	ItemTarget     = "target"
	ItemApexType   = "apex-type"
	ItemApexHost   = "apex-host"
	ItemApexTarget = "apex-target"
)

// Field is one row of a DNS record: what is shown and what gets copied.
type Field struct {
	Item  string
	Label string
	Value string
	Copy  string
}

type Guidance struct {
	Kind   Kind
	Domain string
	Fields []Field
	// Note is only set for apex domains.
	Note string
	Hint string
}

// Guide builds the record to create at the DNS provider for domain.
func Guide(domain, targetHost string) Guidance {
	if Classify(domain) == Subdomain {
		host := HostLabel(domain)
		return Guidance{
			Kind:   Subdomain,
			Domain: domain,
			Fields: []Field{
				{Item: ItemRecordType, Label: "Record Type", Value: "CNAME", Copy: "CNAME"},
				{Item: ItemHost, Label: "Name / Host", Value: host, Copy: host},
				{Item: ItemTarget, Label: "Target / Value", Value: targetHost, Copy: targetHost},
			},
		}
	}

	return Guidance{
		Kind:   Apex,
		Domain: domain,
		Fields: []Field{
			{Item: ItemApexType, Label: "Record Type", Value: "ALIAS or ANAME", Copy: "ALIAS"},
			{Item: ItemApexHost, Label: "Name / Host", Value: "@", Copy: "@"},
			{Item: ItemApexTarget, Label: "Target / Value", Value: targetHost, Copy: targetHost},
		},
		Note: "Apex domains (e.g., example.com) require special DNS records. " +
			"Check if your DNS provider supports ALIAS or ANAME records.",
		Hint: "If your provider doesn't support ALIAS/ANAME, consider using a subdomain (e.g., www." + domain + ")",
	}
}

var NextSteps = []string{
	"Log in to your domain registrar or DNS provider",
	"Add the DNS record with the values shown above",
	"Wait for DNS propagation (typically 5-60 minutes, can take up to 48 hours)",
	"Your custom domain will automatically work once DNS propagates",
}
