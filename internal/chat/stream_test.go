package chat

import (
	"strings"
	"testing"
)

func event(content string) string {
	return `data: {"choices":[{"delta":{"content":"` + content + `"}}]}` + "\n"
}

func TestStreamParserSingleChunk(t *testing.T) {
	p := &StreamParser{}
	stream := event("Hello") + event(" there") + "data: [DONE]\n"

	tokens := p.Feed([]byte(stream))
	if got := strings.Join(tokens, ""); got != "Hello there" {
		t.Errorf("tokens = %q, want %q", got, "Hello there")
	}
	if !p.Done() {
		t.Error("parser should be done after [DONE]")
	}
}

func TestStreamParserByteByByte(t *testing.T) {
	p := &StreamParser{}
	stream := event("Buzz") + event("!") + "data: [DONE]\n"

	var all []string
	for i := 0; i < len(stream); i++ {
		all = append(all, p.Feed([]byte{stream[i]})...)
	}
	if got := strings.Join(all, ""); got != "Buzz!" {
		t.Errorf("tokens = %q, want %q", got, "Buzz!")
	}
	if !p.Done() {
		t.Error("parser should be done")
	}
}

func TestStreamParserSkipsCommentsAndBlanks(t *testing.T) {
	p := &StreamParser{}
	stream := ": keepalive\n\n" + event("ok") + "\r\n" + "data: [DONE]\n"

	tokens := p.Feed([]byte(stream))
	if len(tokens) != 1 || tokens[0] != "ok" {
		t.Errorf("tokens = %v, want [ok]", tokens)
	}
}

func TestStreamParserCRLF(t *testing.T) {
	p := &StreamParser{}
	stream := strings.ReplaceAll(event("a")+event("b")+"data: [DONE]\n", "\n", "\r\n")

	tokens := p.Feed([]byte(stream))
	if got := strings.Join(tokens, ""); got != "ab" {
		t.Errorf("tokens = %q, want %q", got, "ab")
	}
	if !p.Done() {
		t.Error("parser should be done")
	}
}

func TestStreamParserEmptyDelta(t *testing.T) {
	p := &StreamParser{}
	stream := `data: {"choices":[{"delta":{}}]}` + "\n" + event("x") + "data: [DONE]\n"

	tokens := p.Feed([]byte(stream))
	if len(tokens) != 1 || tokens[0] != "x" {
		t.Errorf("tokens = %v, want [x]", tokens)
	}
}

func TestStreamParserIgnoresInputAfterDone(t *testing.T) {
	p := &StreamParser{}
	p.Feed([]byte("data: [DONE]\n"))
	if tokens := p.Feed([]byte(event("late"))); len(tokens) != 0 {
		t.Errorf("tokens after done = %v, want none", tokens)
	}
}
