// Command sketchcli builds one of the library's reference scenarios, runs
// GetProfiles against it, and prints the resulting profiles' wire lengths
// and fragment counts. It exists purely as a smoke-test harness over the
// alchemy library, not as a distinct module.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/syntheticore/alchemy"
)

func main() {
	var (
		scenario     = flag.String("scenario", "rectangle", "one of: crossing-lines, parallel-lines, t-section, rectangle, diagonal-split, circle-in-circle")
		includeOuter = flag.Bool("include-outer", false, "include the clockwise outer boundary in the results")
	)
	flag.Parse()

	sketch, err := buildScenario(*scenario)
	if err != nil {
		log.Fatalf("sketchcli: %v", err)
	}

	opts := alchemy.DefaultOptions()
	opts.IncludeOuter = *includeOuter

	profiles, diags, err := sketch.GetProfiles(opts)
	if err != nil {
		log.Fatalf("sketchcli: GetProfiles failed: %v", err)
	}

	for _, d := range diags {
		fmt.Printf("diagnostic: %s\n", d)
	}

	fmt.Printf("scenario %q produced %d profile(s)\n", *scenario, len(profiles))
	for h, profile := range profiles {
		fmt.Printf("profile %d: %d wire(s)\n", h, len(profile))
		for w, wire := range profile {
			var total alchemy.Length
			for _, tc := range wire {
				total += tc.Cache.Length()
			}
			role := "outer"
			if w > 0 {
				role = "hole"
			}
			fmt.Printf("  wire %d (%s): %d fragment(s), length %s\n", w, role, len(wire), alchemy.HumanFormat(6, total))
		}
	}
}

func buildScenario(name string) (*alchemy.Sketch, error) {
	s := alchemy.NewSketch()
	switch name {
	case "crossing-lines":
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(-0.5, 0, 0), alchemy.Point3Xyz(0.5, 0, 0)))
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(0, -0.5, 0), alchemy.Point3Xyz(0, 0.5, 0)))
	case "parallel-lines":
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(0, 0, 0), alchemy.Point3Xyz(1, 0, 0)))
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(0, 0.5, 0), alchemy.Point3Xyz(1, 0.5, 0)))
	case "t-section":
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(-1, 0, 0), alchemy.Point3Xyz(1, 0, 0)))
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(0, 0, 1), alchemy.Point3Xyz(0, 0, 0)))
	case "rectangle":
		addSquare(s, 0, 0, 1, 1)
	case "diagonal-split":
		addSquare(s, -1, -1, 1, 1)
		s.Add(alchemy.NewLine3(alchemy.Point3Xyz(-1, 1, 0), alchemy.Point3Xyz(1, -1, 0)))
	case "circle-in-circle":
		s.Add(alchemy.NewCircle3(alchemy.Point3Xyz(-27, 3, 0), 68.97, alchemy.UnitZ))
		s.Add(alchemy.NewCircle3(alchemy.Point3Xyz(-1, 27.65, 0), 15.54, alchemy.UnitZ))
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return s, nil
}

func addSquare(s *alchemy.Sketch, minX, minY, maxX, maxY alchemy.Length) {
	p0 := alchemy.Point3Xyz(minX, minY, 0)
	p1 := alchemy.Point3Xyz(maxX, minY, 0)
	p2 := alchemy.Point3Xyz(maxX, maxY, 0)
	p3 := alchemy.Point3Xyz(minX, maxY, 0)
	s.Add(alchemy.NewLine3(p0, p1))
	s.Add(alchemy.NewLine3(p1, p2))
	s.Add(alchemy.NewLine3(p2, p3))
	s.Add(alchemy.NewLine3(p3, p0))
}
