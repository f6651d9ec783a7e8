package curlcmd

import (
	"fmt"
	"strings"
)

// ToGo generates a standalone Go snippet performing the request with
// net/http. The output is gofmt-style indented source for pasting into a
// main function or example.
func (r *Request) ToGo() string {
	var sb strings.Builder

	hasBody := r.Body != ""
	if hasBody {
		fmt.Fprintf(&sb, "body := strings.NewReader(%q)\n", r.Body)
		fmt.Fprintf(&sb, "req, err := http.NewRequest(%q, %q, body)\n", r.Method, r.URL)
	} else {
		fmt.Fprintf(&sb, "req, err := http.NewRequest(%q, %q, nil)\n", r.Method, r.URL)
	}
	sb.WriteString("if err != nil {\n\tlog.Fatal(err)\n}\n")

	for _, k := range sortedKeys(r.Headers) {
		fmt.Fprintf(&sb, "req.Header.Set(%q, %q)\n", k, r.Headers[k])
	}
	if r.User != "" {
		user, pass, _ := strings.Cut(r.User, ":")
		fmt.Fprintf(&sb, "req.SetBasicAuth(%q, %q)\n", user, pass)
	}

	switch {
	case r.Insecure:
		sb.WriteString("client := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}}\n")
	case !r.Follow:
		sb.WriteString("client := &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {\n\treturn http.ErrUseLastResponse\n}}\n")
	default:
		sb.WriteString("client := http.DefaultClient\n")
	}

	sb.WriteString("resp, err := client.Do(req)\n")
	sb.WriteString("if err != nil {\n\tlog.Fatal(err)\n}\n")
	sb.WriteString("defer resp.Body.Close()\n")
	return sb.String()
}
