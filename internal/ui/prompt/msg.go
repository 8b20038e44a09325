package prompt

type frameMsg struct{}
