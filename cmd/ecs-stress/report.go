package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/craftecs/ecs"
	"github.com/rotisserie/eris"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Entities    int
	Components  int
	Systems     int
	Mutations   int
	DirectRatio float64

	// Results
	TotalTime        time.Duration
	Frames           FrameStats
	FinalEntities    int
	DirectMutations  int64
	ManagedMutations int64
	IndexMismatches  int
	Index            ecs.ManagerStats
	Scheduler        *ecs.SchedulerStats
	HeapStart        uint64
	HeapEnd          uint64
}

// FrameStats accumulates scheduler frame timings, split by whether the frame
// had to rebuild the component index.
type FrameStats struct {
	Count         int64
	Total         time.Duration
	Min           time.Duration
	Max           time.Duration
	RebuildFrames int64
	RebuildTotal  time.Duration
}

// Record adds one frame. rebuilt reports whether the index was rebuilt during it.
func (s *FrameStats) Record(d time.Duration, rebuilt bool) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++
	s.Total += d
	if rebuilt {
		s.RebuildFrames++
		s.RebuildTotal += d
	}
}

func (s FrameStats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// RebuildAvg is the mean duration of frames that rebuilt the index.
func (s FrameStats) RebuildAvg() time.Duration {
	if s.RebuildFrames == 0 {
		return 0
	}
	return s.RebuildTotal / time.Duration(s.RebuildFrames)
}

// CleanAvg is the mean duration of frames served by validation alone.
func (s FrameStats) CleanAvg() time.Duration {
	clean := s.Count - s.RebuildFrames
	if clean == 0 {
		return 0
	}
	return (s.Total - s.RebuildTotal) / time.Duration(clean)
}

// HeapPerEntity is the end-of-run heap divided by the live entity count.
func (r *Report) HeapPerEntity() uint64 {
	if r.FinalEntities == 0 {
		return 0
	}
	return r.HeapEnd / uint64(r.FinalEntities)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Generated Components:** {{.Components}}
- **Generated Systems:** {{.Systems}}
- **Mutations per Frame:** {{.Mutations}}
- **Direct Mutation Ratio:** {{printf "%.2f" .DirectRatio}}

## Frames
- **Frames:** {{.Frames.Count}} in {{.TotalTime}}
- **Avg:** {{.Frames.Avg}}
- **Min:** {{.Frames.Min}}
- **Max:** {{.Frames.Max}}
- **Rebuilding Frames:** {{.Frames.RebuildFrames}} (avg {{.Frames.RebuildAvg}})
- **Validated Frames:** {{frameDiff .Frames.Count .Frames.RebuildFrames}} (avg {{.Frames.CleanAvg}})
{{- if .Scheduler}}
- **Systems:**
{{- range .Scheduler.Systems}}
  - {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}, last {{.LastEntities}} entities
{{- end}}
{{- end}}

## Component Index
- **Final Entities:** {{.FinalEntities}}
- **Mutations:** {{.DirectMutations}} direct, {{.ManagedMutations}} through the manager
- **Full Rebuilds:** {{.Index.Rebuilds}}
- **Validation Passes:** {{.Index.Validations}}
- **Buckets:** {{len .Index.Buckets}}{{with largest .Index.Buckets}} (largest: {{.Name}} with {{.EntityCount}} entities){{end}}
- **Consistency Mismatches:** {{.IndexMismatches}}

## Heap
- **Start:** {{.HeapStart}} bytes
- **End:** {{.HeapEnd}} bytes
- **Per Live Entity:** {{.HeapPerEntity}} bytes
`

	fm := template.FuncMap{
		"frameDiff": func(a, b int64) int64 {
			return a - b
		},
		"largest": func(buckets []ecs.BucketStats) *ecs.BucketStats {
			var best *ecs.BucketStats
			for i := range buckets {
				if best == nil || buckets[i].EntityCount > best.EntityCount {
					best = &buckets[i]
				}
			}
			return best
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return eris.Wrap(err, "parse report template")
	}

	if err := tmpl.Execute(w, r); err != nil {
		return eris.Wrap(err, "render report")
	}
	return nil
}
