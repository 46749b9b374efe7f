package render

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// LifecycleOutput is the JSON shape of a lifecycle run
type LifecycleOutput struct {
	Flow            domain.Flow       `json:"flow"`
	Network         string            `json:"network"`
	ChainID         string            `json:"chainId"`
	Status          string            `json:"status"`
	FailedStage     domain.Stage      `json:"failedStage,omitempty"`
	Sender          string            `json:"sender,omitempty"`
	CodeID          uint64            `json:"codeId,omitempty"`
	ContractAddress string            `json:"contractAddress,omitempty"`
	Label           string            `json:"label,omitempty"`
	GasPrice        string            `json:"gasPrice,omitempty"`
	Transactions    []domain.TxResult `json:"transactions"`
	Error           string            `json:"error,omitempty"`
}

// LifecycleRenderer renders the outcome of deploy, upload, instantiate,
// update and migrate runs
type LifecycleRenderer struct {
	out  io.Writer
	json bool
}

// NewLifecycleRenderer creates a new lifecycle renderer
func NewLifecycleRenderer(out io.Writer, json bool) *LifecycleRenderer {
	return &LifecycleRenderer{out: out, json: json}
}

// Render prints result; runErr is the error the run ended with, if any
func (r *LifecycleRenderer) Render(result *usecase.LifecycleResult, runErr error) error {
	if result == nil {
		return nil
	}

	output := NewLifecycleOutput(result, runErr)
	if r.json {
		return writeJSON(r.out, output)
	}

	switch {
	case runErr == nil:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s completed on %s", titleFlow(result.Flow), output.Network)))
	case len(output.Transactions) > 0:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s partially completed on %s (failed while %s)",
			titleFlow(result.Flow), output.Network, result.FailedStage)))
	default:
		// nothing reached the chain; the error alone is reported by the caller
		return nil
	}
	fmt.Fprintln(r.out)

	field(r.out, "Network", fmt.Sprintf("%s (%s)", output.Network, output.ChainID))
	if output.Sender != "" {
		field(r.out, "Sender", addressStyle.Sprint(output.Sender))
	}
	if output.GasPrice != "" {
		field(r.out, "Gas price", output.GasPrice)
	}
	if output.CodeID != 0 {
		field(r.out, "Code ID", valueStyle.Sprint(output.CodeID))
	}
	if output.ContractAddress != "" {
		field(r.out, "Contract", addressStyle.Sprint(output.ContractAddress))
	}
	if output.Label != "" && output.ContractAddress != "" && result.Flow != domain.FlowUpdate && result.Flow != domain.FlowMigrate {
		field(r.out, "Label", output.Label)
	}
	for i, tx := range output.Transactions {
		label := "Transaction"
		if len(output.Transactions) > 1 {
			label = fmt.Sprintf("Transaction %d", i+1)
		}
		field(r.out, label, fmt.Sprintf("%s %s", hashStyle.Sprint(tx.TxHash), labelStyle.Sprintf("(height %d, gas %d)", tx.Height, tx.GasUsed)))
	}

	return nil
}

// NewLifecycleOutput flattens a result into its JSON shape
func NewLifecycleOutput(result *usecase.LifecycleResult, runErr error) LifecycleOutput {
	dep := result.Deployment
	output := LifecycleOutput{
		Flow:            result.Flow,
		Network:         dep.Network,
		ChainID:         dep.ChainID,
		Status:          "completed",
		Sender:          dep.Sender,
		CodeID:          dep.CodeID,
		ContractAddress: dep.ContractAddress,
		Label:           result.Label,
		Transactions:    dep.Transactions,
	}
	if output.Transactions == nil {
		output.Transactions = []domain.TxResult{}
	}
	if !result.Gas.Rate.IsZero() || result.Gas.Denom != "" {
		output.GasPrice = result.Gas.String()
	}
	if runErr != nil {
		output.Status = "failed"
		if len(dep.Transactions) > 0 {
			output.Status = "partial"
		}
		output.FailedStage = result.FailedStage
		output.Error = runErr.Error()
	}
	return output
}

// titleFlow capitalises the flow name the way the progress spinner titles stages
func titleFlow(flow domain.Flow) string {
	return cases.Title(language.English).String(string(flow))
}
