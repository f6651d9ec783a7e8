package sqlfmt

import (
	"strings"
	"testing"
)

func TestFormat_Select(t *testing.T) {
	got := Format("select id, name from users where age > 30 and active = true order by name desc limit 10;", DefaultOptions())
	want := strings.Join([]string{
		"SELECT",
		"  id,",
		"  name",
		"FROM users",
		"WHERE age > 30",
		"  AND active = true",
		"ORDER BY",
		"  name DESC",
		"LIMIT 10;",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_InsertKeepsParenGroups(t *testing.T) {
	got := Format("insert into users (name, age) values ('ada', 36)", DefaultOptions())
	want := strings.Join([]string{
		"INSERT INTO users(name, age)",
		"VALUES ('ada', 36)",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_LowercaseOption(t *testing.T) {
	got := Format("SELECT a FROM t", Options{Indent: "  ", Uppercase: false})
	if !strings.HasPrefix(got, "select") || !strings.Contains(got, "from t") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestFormat_PreservesStringLiterals(t *testing.T) {
	got := Format("select 'WHERE and FROM' from t", DefaultOptions())
	if !strings.Contains(got, "'WHERE and FROM'") {
		t.Fatalf("string literal mangled:\n%s", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("literal keywords should not break lines:\n%s", got)
	}
}

func TestFormat_FunctionCall(t *testing.T) {
	got := Format("select count(*) from t group by kind", DefaultOptions())
	if !strings.Contains(got, "count(*)") {
		t.Fatalf("expected attached call parens:\n%s", got)
	}
	if !strings.Contains(got, "GROUP BY") {
		t.Fatalf("expected GROUP BY clause:\n%s", got)
	}
}

func TestFormat_Empty(t *testing.T) {
	if got := Format("   ", DefaultOptions()); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
