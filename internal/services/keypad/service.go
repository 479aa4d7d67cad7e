package keypad

import (
	"log/slog"
	"strings"

	"calcpad/internal/domain"
)

// Service implements domain.KeypadService on top of an Evaluator.
type Service struct {
	eval domain.Evaluator
	log  *slog.Logger
}

// New returns a keypad service. A nil logger discards output.
func New(eval domain.Evaluator, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{eval: eval, log: log}
}

// Append adds s to the buffer, starting fresh if it holds the error marker.
func (s *Service) Append(buf domain.Buffer, text string) domain.Buffer {
	if buf.IsError() {
		buf = ""
	}
	return buf + domain.Buffer(text)
}

// Clear resets the buffer.
func (s *Service) Clear(domain.Buffer) domain.Buffer { return "" }

// Backspace removes the last character; the error marker is cleared whole.
func (s *Service) Backspace(buf domain.Buffer) domain.Buffer {
	if buf.IsError() {
		return ""
	}
	return buf.DropLast()
}

// Evaluate replaces the buffer with its result, or with the error marker if
// evaluation fails. A blank buffer is returned unchanged.
func (s *Service) Evaluate(buf domain.Buffer) domain.Buffer {
	expr := strings.TrimSpace(buf.String())
	if expr == "" {
		return buf
	}
	out, err := s.eval.Evaluate(expr)
	if err != nil {
		if kind, ok := domain.KindOf(err); ok {
			s.log.Debug("evaluation rejected", "expr", expr, "kind", kind.String(), "err", err)
		} else {
			s.log.Warn("evaluator failed", "expr", expr, "err", err)
		}
		return domain.ErrorMarker
	}
	s.log.Debug("evaluated", "expr", expr, "result", out)
	return domain.Buffer(out)
}

// Dispatch resolves in to an action and applies it. The bool reports whether
// the input was recognized; unrecognized input leaves the buffer unchanged.
func (s *Service) Dispatch(buf domain.Buffer, in domain.Input) (domain.Buffer, bool) {
	cmd := Resolve(in)
	s.log.Debug("input", "key", in.Key, "action", cmd.Action.String())
	switch cmd.Action {
	case domain.ActionAppend:
		return s.Append(buf, cmd.Text), true
	case domain.ActionClear:
		return s.Clear(buf), true
	case domain.ActionBackspace:
		return s.Backspace(buf), true
	case domain.ActionEvaluate:
		return s.Evaluate(buf), true
	default:
		return buf, false
	}
}

// Compile-time assertion that Service implements domain.KeypadService.
var _ domain.KeypadService = (*Service)(nil)
