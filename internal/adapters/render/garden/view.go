package garden

import (
	"fmt"
	"strings"

	"github.com/bnema/memory-garden/internal/application"
	"github.com/bnema/memory-garden/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowFlowers lists each member position under its cluster.
	ShowFlowers bool
}

func renderView(garden application.Garden, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Memory Garden"),
		s.header.Render(fmt.Sprintf("clusters: %d  flowers: %d  lotus: %d  grouped by: %s",
			len(garden.Clusters), garden.FlowerCount(), len(garden.Lotus), garden.GroupBy)),
	}

	if garden.FetchError != "" {
		lines = append(lines, s.warning.Render("memories unavailable: "+garden.FetchError))
	}
	if garden.Dropped > 0 {
		lines = append(lines, s.overflow.Render(fmt.Sprintf("dropped: %d clusters (grid capacity %d)", garden.Dropped, garden.Capacity)))
	}

	if len(garden.Clusters) == 0 {
		lines = append(lines, s.empty.Render("No memories planted yet."))
	}

	for _, cluster := range garden.Clusters {
		lines = append(lines, s.section.Render(renderCluster(cluster, opts, s)))
	}

	if len(garden.Lotus) > 0 {
		lines = append(lines, s.section.Render(renderPond(garden.Lotus, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCluster(cluster domain.Cluster, opts RenderOptions, s styles) string {
	parts := []string{
		s.cluster.Render(clusterTitle(cluster)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.key.Render("cell:"), " ", s.detail.Render(cellLabel(cluster.Cell)), "  ",
			s.key.Render("center:"), " ", s.detail.Render(formatVec(cluster.CenterPosition)), "  ",
			s.key.Render("size:"), " ", s.detail.Render(fmt.Sprintf("%.0f", cluster.Size)),
		),
		s.meta.Render(fmt.Sprintf("%d %s", len(cluster.Flowers), plural(len(cluster.Flowers), "flower", "flowers"))),
	}

	if opts.ShowFlowers {
		for _, flower := range cluster.Flowers {
			parts = append(parts, s.petal.Render("  * "+flowerLine(flower)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderPond(lotus []domain.Flower, s styles) string {
	withMemory := 0
	for _, flower := range lotus {
		if flower.HasMemory() {
			withMemory++
		}
	}

	return s.lotus.Render(fmt.Sprintf("Pond: %d lotus (%d with memories)", len(lotus), withMemory))
}

func clusterTitle(cluster domain.Cluster) string {
	title := cluster.Date
	if title == "" {
		title = domain.UnknownKey
	}
	if emotion := strings.TrimSpace(cluster.Emotion); emotion != "" {
		title += " · " + emotion
	}

	return title
}

func flowerLine(flower domain.Flower) string {
	label := "decorative"
	if flower.Memory != nil {
		label = strings.TrimSpace(flower.Memory.Title)
		if label == "" {
			label = fmt.Sprintf("memory %d", flower.Memory.ID)
		}
	}

	line := fmt.Sprintf("%s %s", label, formatVec(flower.Position))
	if flower.MediaType != "" {
		line += " [" + flower.MediaType + "]"
	}

	return line
}

func cellLabel(cell *domain.Cell) string {
	if cell == nil {
		return "-"
	}

	return fmt.Sprintf("(%d,%d)", cell.Col, cell.Row)
}

func formatVec(v domain.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X(), v.Z())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
