package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/agegold/openpilot-085/record"
	ms "github.com/agegold/openpilot-085/settings"
)

// report prompts for a recorded drive and renders it to a standalone html
// file. An empty dbPath falls back to the configured record path.
func report(dbPath string, outPath string) error {
	if dbPath == "" {
		ms.Settings.Load()
		dbPath = ms.Settings.RecordPath
	}

	drives, err := record.Drives(dbPath)
	if err != nil {
		return err
	}
	if len(drives) == 0 {
		fmt.Println("no recorded drives found in", dbPath)
		return nil
	}

	labels := make([]string, len(drives))
	for i, d := range drives {
		labels[i] = fmt.Sprintf("%s  %s  %d samples  %s", d.StartedAt, d.Vehicle, d.Samples, d.Session)
	}

	prompt := promptui.Select{
		Label: "Select Drive",
		Items: labels,
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return nil
	}

	if err := record.WriteReport(dbPath, drives[idx].Session, outPath); err != nil {
		return err
	}
	fmt.Println("wrote", outPath)
	return nil
}
