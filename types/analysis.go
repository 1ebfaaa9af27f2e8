package types

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CoverageAnalyzer counts the cumulative number of unique state hashes
// observed across the episodes of a run
type CoverageAnalyzer struct {
	uniqueStates    map[string]bool
	numUniqueStates []int
}

var _ Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{
		uniqueStates:    make(map[string]bool),
		numUniqueStates: make([]int, 0),
	}
}

func (c *CoverageAnalyzer) Analyze(run int, name string, trace *Trace) {
	for j := 0; j < trace.Len(); j++ {
		s, _, _, ns, _ := trace.Get(j)
		c.uniqueStates[s.Hash()] = true
		c.uniqueStates[ns.Hash()] = true
	}
	c.numUniqueStates = append(c.numUniqueStates, len(c.uniqueStates))
}

func (c *CoverageAnalyzer) DataSet() DataSet {
	return c.numUniqueStates
}

func (c *CoverageAnalyzer) Reset() {
	c.uniqueStates = make(map[string]bool)
	c.numUniqueStates = make([]int, 0)
}

// CoveragePlotter plots the unique states covered per episode for each experiment
func CoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "State coverage"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "States covered"
		for i := 0; i < len(names); i++ {
			uniqueStates := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueStates))
			for j, v := range uniqueStates {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			fmt.Printf("Number of unique states: %d for experiment: %s\n", uniqueStates[len(uniqueStates)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}

// RewardAnalyzer collects the total reward of each episode
type RewardAnalyzer struct {
	episodeRewards []float64
}

var _ Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{
		episodeRewards: make([]float64, 0),
	}
}

func (r *RewardAnalyzer) Analyze(run int, name string, trace *Trace) {
	r.episodeRewards = append(r.episodeRewards, trace.TotalReward())
}

func (r *RewardAnalyzer) DataSet() DataSet {
	return r.episodeRewards
}

func (r *RewardAnalyzer) Reset() {
	r.episodeRewards = make([]float64, 0)
}

// RewardPlotter plots the per episode return of each experiment
func RewardPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Episode reward"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Total reward"
		for i := 0; i < len(names); i++ {
			rewards := ds[i].([]float64)
			points := make(plotter.XYs, len(rewards))
			for j, v := range rewards {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_reward.png"))
	}
}

// HTMLRewardComparator renders the per episode returns as an interactive
// chart page, one line per experiment
func HTMLRewardComparator(savePath string) Comparator {
	if _, err := os.Stat(savePath); err != nil {
		os.MkdirAll(savePath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: "Episode reward",
			}),
			charts.WithInitializationOpts(opts.Initialization{
				Theme: "shine",
			}),
		)

		numEpisodes := 0
		for _, d := range ds {
			if rewards := d.([]float64); len(rewards) > numEpisodes {
				numEpisodes = len(rewards)
			}
		}
		episodes := make([]string, numEpisodes)
		for i := 0; i < numEpisodes; i++ {
			episodes[i] = strconv.Itoa(i)
		}
		line = line.SetXAxis(episodes)

		for i, d := range ds {
			rewards := d.([]float64)
			items := make([]opts.LineData, len(rewards))
			for j, v := range rewards {
				items[j] = opts.LineData{Value: v}
			}
			line.AddSeries(names[i], items)
		}

		page := components.NewPage()
		page.AddCharts(line)
		f, err := os.Create(path.Join(savePath, strconv.Itoa(run)+"_reward.html"))
		if err != nil {
			return
		}
		defer f.Close()
		page.Render(io.MultiWriter(f))
	}
}
