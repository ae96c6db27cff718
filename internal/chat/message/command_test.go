package message

import (
	"reflect"
	"testing"
)

func TestParse(test *testing.T) {
	cases := []struct {
		line     string
		expected Command
	}{
		{"JOIN lobby", Command{Kind: Join, Room: "lobby"}},
		{"JOIN room with spaces", Command{Kind: Join, Room: "room with spaces"}},
		{"JOIN ", Command{Kind: Join, Room: ""}},
		{"LEAVE", Command{Kind: Leave}},
		{"LISTROOMS", Command{Kind: ListRooms}},
		{"EXIT", Command{Kind: Exit}},
		{"JOIN", Command{Kind: Text, Text: "JOIN"}},
		{"leave", Command{Kind: Text, Text: "leave"}},
		{"LEAVE now", Command{Kind: Text, Text: "LEAVE now"}},
		{"hello there", Command{Kind: Text, Text: "hello there"}},
		{" LISTROOMS", Command{Kind: Text, Text: "LISTROOMS"}},
	}
	for _, c := range cases {
		if got := Parse(c.line); !reflect.DeepEqual(got, c.expected) {
			test.Errorf("Parse(%q): expected %+v, got %+v", c.line, c.expected, got)
		}
	}
}

func TestKind_String(test *testing.T) {
	known := map[Kind]string{
		Text:      "text",
		Join:      "join",
		Leave:     "leave",
		ListRooms: "listrooms",
		Exit:      "exit",
	}
	for kind, expected := range known {
		if s := kind.String(); s != expected {
			test.Errorf("Kind(%d).String(): expected %q, got %q", kind, expected, s)
		}
	}
	if s := Kind(100).String(); s != "unknown command kind" {
		test.Error("unexpected representation of unknown kind:", s)
	}
}

func TestSanitize(test *testing.T) {
	cases := []struct {
		source   string
		expected string
	}{
		{"hello", "hello"},
		{"  hello  ", "hello"},
		{"tab\tseparated", "tab separated"},
		{"bell\x07ring", "bellring"},
		{"split\r\nline", "split line"},
		{"ключ 键", "ключ 键"},
		{"bad\xffbyte", "badbyte"},
		{"\x00\x1b", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.source); got != c.expected {
			test.Errorf("Sanitize(%q): expected %q, got %q", c.source, c.expected, got)
		}
	}
}
