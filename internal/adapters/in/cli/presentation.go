package cli

import (
	"fmt"
	"io"

	"github.com/bnema/boxkeep/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/boxkeep/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + value
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderInfo(msg string) string {
	return styles.RenderInfo(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

// FormatError renders a command failure, prefixed with its kind when the
// error is classified.
func FormatError(err error) string {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		return styles.RenderError(err.Error())
	}
	return styles.RenderError(fmt.Sprintf("%s: %v", kind, err))
}
