package domain

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Guidance", func() {
	Describe("Classify", func() {
		DescribeTable("should split apex from subdomain by label count",
			func(domain string, want Kind) {
				Expect(Classify(domain)).To(Equal(want))
			},
			Entry("apex", "example.com", Apex),
			Entry("subdomain", "app.example.com", Subdomain),
			Entry("deep subdomain", "a.b.example.com", Subdomain),
			Entry("no dot", "localhost", Apex),
			Entry("empty", "", Apex),
			Entry("trailing dot counts as a label", "example.com.", Subdomain),
		)
	})

	Describe("HostLabel", func() {
		It("should return the part before the first dot", func() {
			Expect(HostLabel("app.example.com")).To(Equal("app"))
			Expect(HostLabel("localhost")).To(Equal("localhost"))
		})
	})

	Describe("TargetHost", func() {
		It("should strip the scheme", func() {
			Expect(TargetHost("https://abc.icp0.io")).To(Equal("abc.icp0.io"))
			Expect(TargetHost("http://localhost:8080")).To(Equal("localhost:8080"))
			Expect(TargetHost("ssh://valentine.example.com")).To(Equal("ssh://valentine.example.com"))
		})
	})

	Describe("Guide", func() {
		It("should point a subdomain at the target with a CNAME", func() {
			g := Guide("app.example.com", "abc.icp0.io")
			Expect(g.Kind).To(Equal(Subdomain))
			Expect(g.Note).To(BeEmpty())
			Expect(g.Fields).To(Equal([]Field{
				{Item: ItemRecordType, Label: "Record Type", Value: "CNAME", Copy: "CNAME"},
				{Item: ItemHost, Label: "Name / Host", Value: "app", Copy: "app"},
				{Item: ItemTarget, Label: "Target / Value", Value: "abc.icp0.io", Copy: "abc.icp0.io"},
			}))
		})

		It("should suggest ALIAS or ANAME for an apex", func() {
			g := Guide("example.com", "abc.icp0.io")
			Expect(g.Kind).To(Equal(Apex))
			Expect(g.Fields[0].Value).To(Equal("ALIAS or ANAME"))
			Expect(g.Fields[0].Copy).To(Equal("ALIAS"))
			Expect(g.Fields[1].Value).To(Equal("@"))
			Expect(g.Fields[2].Value).To(Equal("abc.icp0.io"))
			Expect(g.Note).NotTo(BeEmpty())
			Expect(g.Hint).To(ContainSubstring("www.example.com"))
		})
	})
})
