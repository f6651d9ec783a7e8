// Package curlcmd parses curl command lines into a structured request
// model and generates equivalent Go code.
package curlcmd

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Request is the structured form of a curl invocation.
type Request struct {
	Method   string            `json:"method"`
	URL      string            `json:"url"`
	Headers  map[string]string `json:"headers,omitempty"`
	Body     string            `json:"body,omitempty"`
	User     string            `json:"user,omitempty"` // "user:password" from -u
	Insecure bool              `json:"insecure,omitempty"`
	Follow   bool              `json:"follow,omitempty"`
}

// Tokenize splits a shell command line into words, honoring single
// quotes, double quotes, backslash escapes and backslash-newline
// continuations. Unterminated quotes are an error.
func Tokenize(cmd string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inWord := false
	i := 0
	for i < len(cmd) {
		c := cmd[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			if inWord {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inWord = false
			}
			i++
		case '\\':
			if i+1 >= len(cmd) {
				return nil, fmt.Errorf("trailing backslash")
			}
			// Escaped newline is a line continuation, not part of a word.
			if cmd[i+1] == '\n' {
				i += 2
				continue
			}
			cur.WriteByte(cmd[i+1])
			inWord = true
			i += 2
		case '\'':
			end := strings.IndexByte(cmd[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("unterminated single quote")
			}
			cur.WriteString(cmd[i+1 : i+1+end])
			inWord = true
			i += end + 2
		case '"':
			j := i + 1
			for j < len(cmd) && cmd[j] != '"' {
				if cmd[j] == '\\' && j+1 < len(cmd) {
					// Inside double quotes a backslash only escapes
					// $, `, ", \ and newline; otherwise it is literal.
					switch cmd[j+1] {
					case '$', '`', '"', '\\':
						cur.WriteByte(cmd[j+1])
						j += 2
					case '\n':
						j += 2
					default:
						cur.WriteByte('\\')
						j++
					}
					continue
				}
				cur.WriteByte(cmd[j])
				j++
			}
			if j >= len(cmd) {
				return nil, fmt.Errorf("unterminated double quote")
			}
			inWord = true
			i = j + 1
		default:
			cur.WriteByte(c)
			inWord = true
			i++
		}
	}
	if inWord {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// Parse interprets a curl command line. The leading "curl" word is
// optional. Unknown flags are skipped; flags that take a value consume it.
func Parse(cmd string) (*Request, error) {
	tokens, err := Tokenize(cmd)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if len(tokens) > 0 && tokens[0] == "curl" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	req := &Request{Headers: map[string]string{}}
	methodSet := false

	next := func(i int, flag string) (string, int, error) {
		if i+1 >= len(tokens) {
			return "", i, fmt.Errorf("flag %s requires a value", flag)
		}
		return tokens[i+1], i + 1, nil
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		var val string
		switch tok {
		case "-X", "--request":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			req.Method = strings.ToUpper(val)
			methodSet = true
		case "-H", "--header":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			name, value, ok := strings.Cut(val, ":")
			if !ok {
				return nil, fmt.Errorf("malformed header %q", val)
			}
			req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
		case "-d", "--data", "--data-raw", "--data-binary", "--data-ascii":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			if req.Body != "" {
				req.Body += "&"
			}
			req.Body += val
		case "-u", "--user":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			req.User = val
		case "-A", "--user-agent":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			req.Headers["User-Agent"] = val
		case "-e", "--referer":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			req.Headers["Referer"] = val
		case "--url":
			if val, i, err = next(i, tok); err != nil {
				return nil, err
			}
			req.URL = val
		case "-k", "--insecure":
			req.Insecure = true
		case "-L", "--location":
			req.Follow = true
		case "--compressed", "-s", "--silent", "-v", "--verbose", "-i", "--include":
			// No effect on the request model.
		case "-o", "--output", "-F", "--form", "--connect-timeout", "--max-time":
			// Value-taking flags we do not model; skip the value too.
			if _, i, err = next(i, tok); err != nil {
				return nil, err
			}
		default:
			if strings.HasPrefix(tok, "-") {
				continue
			}
			if req.URL != "" {
				return nil, fmt.Errorf("multiple urls: %q and %q", req.URL, tok)
			}
			req.URL = tok
		}
	}

	if req.URL == "" {
		return nil, fmt.Errorf("no url in command")
	}
	if !strings.Contains(req.URL, "://") {
		req.URL = "https://" + req.URL
	}
	if _, err := url.Parse(req.URL); err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", req.URL, err)
	}
	if !methodSet {
		if req.Body != "" {
			req.Method = "POST"
		} else {
			req.Method = "GET"
		}
	}
	return req, nil
}

// String renders the request back as a canonical curl command.
func (r *Request) String() string {
	var sb strings.Builder
	sb.WriteString("curl -X " + r.Method)
	for _, k := range sortedKeys(r.Headers) {
		fmt.Fprintf(&sb, " -H %s", shellQuote(k+": "+r.Headers[k]))
	}
	if r.User != "" {
		fmt.Fprintf(&sb, " -u %s", shellQuote(r.User))
	}
	if r.Body != "" {
		fmt.Fprintf(&sb, " -d %s", shellQuote(r.Body))
	}
	if r.Follow {
		sb.WriteString(" -L")
	}
	if r.Insecure {
		sb.WriteString(" -k")
	}
	sb.WriteString(" " + shellQuote(r.URL))
	return sb.String()
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$&|;<>(){}*?") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
