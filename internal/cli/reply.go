package cli

import (
	"strings"

	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/parser"
)

// RenderReply styles each line of a parser reply by its status prefix.
func RenderReply(reply string) string {
	lines := strings.Split(reply, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, parser.PrefixSuccess):
			lines[i] = FormatSuccess(strings.TrimSpace(strings.TrimPrefix(line, parser.PrefixSuccess)))
		case strings.HasPrefix(line, parser.PrefixConfirm):
			lines[i] = FormatQuestion(strings.TrimSpace(strings.TrimPrefix(line, parser.PrefixConfirm)))
		case strings.HasPrefix(line, parser.PrefixError):
			lines[i] = FormatError(strings.TrimSpace(strings.TrimPrefix(line, parser.PrefixError)))
		}
	}
	return strings.Join(lines, "\n")
}

// SourceLabel names the component that produced a result.
func SourceLabel(source model.Source) string {
	if source == model.SourceAI {
		return RobotIcon + " ai"
	}
	return "rules"
}
