package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/HARPLab/human-ai-value-alignment/util"
)

// Experiment pairs a policy with an environment and runs it for a number
// of episodes, counting how often each property is satisfied
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment

	Result        []*Trace
	Properties    []*Monitor
	PropertyStats []int
}

func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
		Result:      make([]*Trace, 0),
		Properties:  make([]*Monitor, 0),
	}
}

func (e *Experiment) AddProperty(m *Monitor) {
	e.Properties = append(e.Properties, m)
}

type experimentRunConfig struct {
	CurrentRun int
	Episodes   int
	Horizon    int
	Analyzers  []Analyzer
	Context    context.Context

	RecordTraces   bool
	RecordPolicy   bool
	ReportSavePath string
}

func (e *Experiment) recordTrace(rConfig *experimentRunConfig, trace *Trace) {
	tracesFile := path.Join(rConfig.ReportSavePath, "traces", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".jsonl")
	bs, err := json.Marshal(trace)
	if err != nil {
		return
	}
	util.AppendToFile(tracesFile, string(bs))
}

// Run the experiment for the specified number of episodes
// Additionally, for each episode, check if any of the properties have been satisfied
func (e *Experiment) Run(rConfig *experimentRunConfig) {
	e.PropertyStats = make([]int, len(e.Properties))
	agent := NewAgent(&AgentConfig{
		Episodes:    rConfig.Episodes,
		Horizon:     rConfig.Horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})

	for i := 0; i < rConfig.Episodes; i++ {
		select {
		case <-rConfig.Context.Done():
			return
		default:
		}
		fmt.Printf("\rExperiment: %s, Episode: %d/%d", e.Name, i+1, rConfig.Episodes)
		trace := agent.RunEpisode(i)
		agent.traces[i] = trace
		for p, prop := range e.Properties {
			if _, ok := prop.Check(trace); ok {
				e.PropertyStats[p] += 1
			}
		}
		if rConfig.RecordTraces {
			e.recordTrace(rConfig, trace)
		}
		for _, a := range rConfig.Analyzers {
			a.Analyze(rConfig.CurrentRun, e.Name, trace)
		}
	}
	e.Result = agent.traces
	fmt.Println("")
	for p, count := range e.PropertyStats {
		fmt.Printf("Property %d satisfied in %d episodes\n", p+1, count)
	}

	if rConfig.RecordPolicy {
		if recorder, ok := e.policy.(Recorder); ok {
			policyFile := path.Join(rConfig.ReportSavePath, "policies", e.Name+"_"+strconv.Itoa(rConfig.CurrentRun)+".json")
			recorder.Record(policyFile)
		}
	}
}

// Reset cleans the learned policy between runs
func (e *Experiment) Reset() {
	e.policy.Reset()
}

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information of the traces, one trace at a time
// (run, experiment name, trace)
type Analyzer interface {
	Analyze(int, string, *Trace)
	DataSet() DataSet
	Reset()
}

// Comparator differentiates between datasets with associated names
// (run, experiment names, datasets)
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(int, []string, []DataSet) {}
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs     int
	Episodes int
	Horizon  int

	RecordPath   string
	RecordTraces bool
	RecordPolicy bool
}

// Comparison contains the different experiments to compare
// The traces obtained from the experiments are analyzed
// The analyzed datasets are then compared
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance and prepares the record folders
func NewComparison(config *ComparisonConfig) *Comparison {
	os.MkdirAll(config.RecordPath, 0777)
	if config.RecordTraces {
		os.MkdirAll(path.Join(config.RecordPath, "traces"), 0777)
	}
	if config.RecordPolicy {
		os.MkdirAll(path.Join(config.RecordPath, "policies"), 0777)
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) {
	c.recordConfig()

	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return
			default:
			}
			e.Run(c.prepareRunConfig(ctx, run))
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
			e.Reset()
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
}

func (c *Comparison) prepareRunConfig(ctx context.Context, run int) *experimentRunConfig {
	rCfg := &experimentRunConfig{
		CurrentRun:     run,
		Episodes:       c.cConfig.Episodes,
		Horizon:        c.cConfig.Horizon,
		Analyzers:      make([]Analyzer, 0),
		Context:        ctx,
		RecordTraces:   c.cConfig.RecordTraces,
		RecordPolicy:   c.cConfig.RecordPolicy,
		ReportSavePath: c.cConfig.RecordPath,
	}
	for _, a := range c.analyzers {
		rCfg.Analyzers = append(rCfg.Analyzers, a)
	}
	return rCfg
}

// record the configuration of the comparison
func (c *Comparison) recordConfig() {
	cfg := c.cConfig
	f, err := os.Create(path.Join(cfg.RecordPath, "comparison_config.json"))
	if err != nil {
		return
	}
	defer f.Close()

	out := make(map[string]interface{})
	out["runs"] = cfg.Runs
	out["episodes"] = cfg.Episodes
	out["horizon"] = cfg.Horizon
	out["record_traces"] = cfg.RecordTraces
	out["record_policy"] = cfg.RecordPolicy

	experiments := make([]string, 0)
	for _, e := range c.Experiments {
		experiments = append(experiments, e.Name)
	}
	out["experiments"] = experiments

	analyzers := make([]string, 0)
	for name := range c.analyzers {
		analyzers = append(analyzers, name)
	}
	out["analyzers"] = analyzers

	bs, err := json.Marshal(out)
	if err != nil {
		return
	}
	f.Write(bs)
}
