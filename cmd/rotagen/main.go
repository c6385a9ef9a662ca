package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/toolsched/rota-api-go/pkg/config"
	"github.com/toolsched/rota-api-go/pkg/export"
	"github.com/toolsched/rota-api-go/pkg/models"
	"github.com/toolsched/rota-api-go/pkg/scheduler"
)

func main() {
	now := time.Now()
	configPath := flag.String("config", "", "path to a YAML schedule configuration")
	year := flag.Int("year", now.Year(), "target year")
	month := flag.Int("month", int(now.Month()), "target month (1-12)")
	minShifts := flag.Int("min", 0, "minimum shifts per member")
	seed := flag.Int64("seed", 0, "random seed (omit for a time-based seed)")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	roster := models.DefaultTeamMembers
	catalog := models.DefaultShiftConfig
	constraints := models.ConstraintSet{}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fatal("read config: %v", err)
		}
		res, err := config.Import(data)
		if err != nil {
			fatal("import config: %v", err)
		}
		if res.TeamMembers != nil {
			roster = res.TeamMembers
		}
		if res.ShiftConfiguration != nil {
			catalog = res.ShiftConfiguration
		}
		if res.Constraints != nil {
			constraints = res.Constraints
		}
	}

	var rng *rand.Rand
	if seedSet {
		rng = rand.New(rand.NewSource(*seed))
	}

	s := scheduler.New(roster, catalog, constraints, rng)
	s.MinShiftsPerMember = *minShifts
	sched, err := s.Run(*year, *month)
	if err != nil {
		fatal("generate schedule: %v", err)
	}

	base := fmt.Sprintf("schedule_%d_%02d", *year, *month)

	csvPath := filepath.Join(*outDir, base+".csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		fatal("create %s: %v", csvPath, err)
	}
	if err := export.WriteCSV(csvFile, sched); err != nil {
		fatal("write csv: %v", err)
	}
	csvFile.Close()

	ics, err := export.ICS(sched)
	if err != nil {
		fatal("build ics: %v", err)
	}
	icsPath := filepath.Join(*outDir, base+".ics")
	if err := os.WriteFile(icsPath, []byte(ics), 0o644); err != nil {
		fatal("write %s: %v", icsPath, err)
	}

	xlsxPath := filepath.Join(*outDir, base+".xlsx")
	xlsxFile, err := os.Create(xlsxPath)
	if err != nil {
		fatal("create %s: %v", xlsxPath, err)
	}
	if err := export.WriteWorkbook(xlsxFile, sched, *year, *month); err != nil {
		fatal("write workbook: %v", err)
	}
	xlsxFile.Close()

	counts := sched.CountByMember(roster)
	fmt.Printf("Generated %d slots for %d-%02d (spread %d)\n", len(sched), *year, *month, sched.Spread(roster))
	for _, m := range roster {
		fmt.Printf("  %s: %d shifts\n", m, counts[m])
	}
	fmt.Printf("Wrote %s, %s, %s\n", csvPath, icsPath, xlsxPath)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
