package chat

import (
	"encoding/json"
	"strings"
)

// streamEvent is the decoded shape of one "data:" event from an
// OpenAI-compatible completion stream.
type streamEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamParser incrementally reconstructs content tokens from a
// line-delimited event stream. It is independent of the transport: feed it
// raw chunks as they arrive and collect the decoded tokens. The stream
// ends at the explicit "[DONE]" marker.
//
// Protocol, per line: blank lines and ": comment" lines are skipped, and
// only "data: " events carry payloads. A payload that fails to decode is
// held in the buffer in case it was split across chunks.
type StreamParser struct {
	buf  strings.Builder
	done bool
}

// Done reports whether the end-of-stream marker has been seen.
func (p *StreamParser) Done() bool {
	return p.done
}

// Feed consumes a raw chunk and returns the content tokens completed by
// it. Feeding after the end-of-stream marker returns nothing.
func (p *StreamParser) Feed(chunk []byte) []string {
	if p.done {
		return nil
	}
	p.buf.Write(chunk)

	var tokens []string
	for {
		text := p.buf.String()
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimSuffix(text[:idx], "\r")
		rest := text[idx+1:]
		p.buf.Reset()
		p.buf.WriteString(rest)

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, ":") {
			continue
		}
		payload, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "[DONE]" {
			p.done = true
			return tokens
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			// Likely a payload split across chunks: put the line back and
			// wait for more data.
			withheld := line + "\n" + p.buf.String()
			p.buf.Reset()
			p.buf.WriteString(withheld)
			break
		}
		if len(event.Choices) > 0 && event.Choices[0].Delta.Content != "" {
			tokens = append(tokens, event.Choices[0].Delta.Content)
		}
	}
	return tokens
}
