package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/superstar-lottery/stardeploy/internal/domain/models"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

var (
	networkHeader  = color.New(color.BgCyan, color.FgBlack, color.Bold)
	timestampStyle = color.New(color.Faint)
)

// DeploymentsRenderer renders the recorded runs grouped by network
type DeploymentsRenderer struct {
	out  io.Writer
	json bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, json bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out, json: json}
}

// RenderDeploymentList renders one table per network
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if r.json {
		deployments := result.Deployments
		if deployments == nil {
			deployments = []*models.Deployment{}
		}
		return writeJSON(r.out, deployments)
	}

	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	// deployments arrive sorted by network
	var current string
	var t table.Writer
	flush := func() {
		if t != nil {
			fmt.Fprintln(r.out, t.Render())
			fmt.Fprintln(r.out)
		}
	}

	for _, dep := range result.Deployments {
		if t == nil || dep.Network != current {
			flush()
			current = dep.Network
			fmt.Fprintln(r.out, networkHeader.Sprintf(" ◆ %s (%s) ", dep.Network, dep.ChainID))
			t = newDeploymentTable()
		}
		t.AppendRow(table.Row{
			dep.Flow,
			statusText(dep.Status),
			codeIDText(dep.CodeID),
			addressStyle.Sprint(dep.ContractAddress),
			dep.Label,
			timestampStyle.Sprint(dep.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		})
		if dep.Error != "" {
			t.AppendRow(table.Row{"", color.New(color.FgRed).Sprintf("└─ %s: %s", dep.FailedStage, dep.Error)})
		}
	}
	flush()

	fmt.Fprintf(r.out, "Total: %d", result.Summary.Total)
	for _, status := range []models.DeploymentStatus{models.DeploymentStatusCompleted, models.DeploymentStatusPartial, models.DeploymentStatusFailed} {
		if n := result.Summary.ByStatus[status]; n > 0 {
			fmt.Fprintf(r.out, "  %s %d", statusText(status), n)
		}
	}
	fmt.Fprintln(r.out)
	return nil
}

func newDeploymentTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box.PaddingRight = "   "
	t.AppendHeader(table.Row{"FLOW", "STATUS", "CODE ID", "CONTRACT", "LABEL", "CREATED"})
	return t
}

func statusText(status models.DeploymentStatus) string {
	switch status {
	case models.DeploymentStatusCompleted:
		return color.New(color.FgGreen).Sprint(status)
	case models.DeploymentStatusPartial:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

func codeIDText(id uint64) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprint(id)
}
