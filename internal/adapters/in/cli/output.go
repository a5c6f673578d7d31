package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/adapters/in/cli/ui/styles"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func parseOutputFormat(raw string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case outputTable, outputJSON, outputYAML:
		return f, nil
	case "":
		return outputTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json or yaml)", raw)
	}
}

func writeStructured(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderRecord(w io.Writer, c dto.Container) error {
	lines := []string{
		cliRenderMeta("Owner:", c.Owner),
		cliRenderMeta("Name:", c.Name),
		cliRenderMeta("Image:", c.Image),
		cliRenderMeta("State:", styles.RenderBadge(c.State)),
	}
	if c.RuntimeID != "" {
		lines = append(lines, cliRenderMeta("Runtime ID:", shortID(c.RuntimeID)))
	}
	lines = append(lines, cliRenderMeta("Created:", formatTime(c.CreatedAt)))
	if c.DestroyedAt != nil {
		lines = append(lines, cliRenderMeta("Destroyed:", formatTime(*c.DestroyedAt)))
	}
	return cliWriteLine(w, strings.Join(lines, "\n"))
}

func renderView(w io.Writer, format outputFormat, v dto.ContainerView) error {
	if format != outputTable {
		return writeStructured(w, format, v)
	}

	if err := cliWriteLine(w, cliRenderTitle("Container "+v.Container.Name)); err != nil {
		return err
	}
	if err := renderRecord(w, v.Container); err != nil {
		return err
	}
	if err := cliWriteLine(w, cliRenderMeta("Status:", styles.RenderBadge(v.Status))); err != nil {
		return err
	}
	if v.Live != nil && v.Live.StartedAt != nil {
		if err := cliWriteLine(w, cliRenderMeta("Started:", formatTime(*v.Live.StartedAt))); err != nil {
			return err
		}
	}
	if v.ProbeError != "" {
		return cliWriteLine(w, cliRenderWarning("probe failed: "+v.ProbeError))
	}
	return nil
}

func renderViews(w io.Writer, format outputFormat, resp dto.ContainersResponse) error {
	if format != outputTable {
		return writeStructured(w, format, resp)
	}
	if len(resp.Containers) == 0 {
		return cliWriteLine(w, cliRenderMuted("No containers"))
	}

	rows := make([][]string, 0, len(resp.Containers))
	var notes []string
	for _, v := range resp.Containers {
		rows = append(rows, []string{
			v.Container.Owner,
			v.Container.Name,
			v.Container.State,
			v.Status,
			shortID(v.Container.RuntimeID),
			v.Container.Image,
			formatTime(v.Container.CreatedAt),
		})
		switch {
		case v.Drifted:
			notes = append(notes, fmt.Sprintf("%s: container was gone, record marked destroyed", v.Container.Owner))
		case v.ProbeError != "":
			notes = append(notes, fmt.Sprintf("%s: probe failed: %s", v.Container.Owner, v.ProbeError))
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.TableBorder).
		Headers("OWNER", "NAME", "STATE", "STATUS", "RUNTIME ID", "IMAGE", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Theme.TableHeader
			}
			return styles.Theme.TableCell
		})

	if err := cliWriteLine(w, t.Render()); err != nil {
		return err
	}
	for _, note := range notes {
		if err := cliWriteLine(w, cliRenderWarning(note)); err != nil {
			return err
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
