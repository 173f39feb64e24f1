package layout

import "fmt"

// DPILevels is the fixed resolution ladder offered to the user.
var DPILevels = []int{100, 150, 200, 300, 450, 600}

// RenderProfile bundles the DPI, thread-count and render-scale
// recommendations for one physical output size. Threads is a hint (upper
// bound) for the rasterization worker pool, not a guarantee; callers may
// clamp it further.
type RenderProfile struct {
	Name        string
	DPI         int
	Threads     int
	RenderScale float64
	Description string
}

// CalculateRenderProfile picks a profile from the size decision table, keyed
// on the larger of the two dimensions. Small symbols get full quality and
// parallelism; very large formats are viewed from a distance and rendered at
// reduced DPI on a single thread, where disk I/O dominates anyway.
func CalculateRenderProfile(symbolHeightMM, symbolWidthMM float64, userDPI, maxThreads int) RenderProfile {
	maxDimension := symbolHeightMM
	if symbolWidthMM > maxDimension {
		maxDimension = symbolWidthMM
	}

	switch {
	case maxDimension <= 100:
		return RenderProfile{
			Name:        "Standard (hohe Qualität)",
			DPI:         minInt(userDPI, 600),
			Threads:     maxThreads,
			RenderScale: 2.0,
			Description: "Optimal für kleine bis mittlere Zeichen (bis 100mm)",
		}
	case maxDimension <= 150:
		return RenderProfile{
			Name:        "Mittel (gute Qualität)",
			DPI:         minInt(userDPI, 450),
			Threads:     maxInt(2, maxThreads/2),
			RenderScale: 1.5,
			Description: "Optimal für mittlere Zeichen (100-150mm)",
		}
	case maxDimension <= 200:
		return RenderProfile{
			Name:        "Poster (Poster-Qualität)",
			DPI:         minInt(userDPI, 300),
			Threads:     2,
			RenderScale: 1.5,
			Description: "Optimal für Poster (150-200mm)",
		}
	case maxDimension <= 400:
		return RenderProfile{
			Name:        "Banner (Display-Qualität)",
			DPI:         minInt(userDPI, 200),
			Threads:     1,
			RenderScale: 1.2,
			Description: "Optimal für Banner (200-400mm)",
		}
	default:
		return RenderProfile{
			Name:        "XXL (Weitansicht)",
			DPI:         minInt(userDPI, 150),
			Threads:     1,
			RenderScale: 1.0,
			Description: "Optimal für sehr große Formate (>400mm)",
		}
	}
}

// ApplyMinimumDPIFloor raises the profile DPI to the configured print
// minimum and returns the adjusted profile as a new value. The floor only
// applies when the user asked for at least that much (userDPI >= floor); a
// deliberately lower user DPI is a test export and stays untouched.
func ApplyMinimumDPIFloor(p RenderProfile, minimumDPI, userDPI int) RenderProfile {
	if minimumDPI <= 0 || userDPI < minimumDPI || p.DPI >= minimumDPI {
		return p
	}
	p.DPI = minimumDPI
	p.Description = fmt.Sprintf("%s (DPI auf %d erhöht für Druckqualität)", p.Description, minimumDPI)
	return p
}

// CalculateOptimalDPI drops the resolution stepwise as the symbol grows.
// Large print formats are viewed from further away and do not need 600 DPI.
// Never exceeds baseDPI, the user's chosen maximum.
func CalculateOptimalDPI(symbolHeightMM, symbolWidthMM float64, baseDPI int) int {
	maxDimension := symbolHeightMM
	if symbolWidthMM > maxDimension {
		maxDimension = symbolWidthMM
	}

	var optimal int
	switch {
	case maxDimension <= 50:
		optimal = 600
	case maxDimension <= 100:
		optimal = 450
	case maxDimension <= 200:
		optimal = 300
	case maxDimension <= 400:
		optimal = 200
	default:
		optimal = 150
	}
	return minInt(optimal, baseDPI)
}

// CalculateOptimalThreads reduces parallelism as the rendered pixel count
// grows. Above ~25 megapixels the bottleneck is writing to disk, and extra
// threads make it worse. Always at least 1, never above maxThreads.
func CalculateOptimalThreads(symbolHeightMM, symbolWidthMM float64, dpi, maxThreads int) int {
	totalPixels := MMToPixels(symbolHeightMM, dpi) * MMToPixels(symbolWidthMM, dpi)
	megapixels := float64(totalPixels) / 1e6

	var threads int
	switch {
	case megapixels <= 10:
		threads = maxThreads
	case megapixels <= 25:
		threads = maxInt(2, maxThreads/2)
	default:
		threads = 1
	}
	if threads < 1 {
		threads = 1
	}
	return minInt(threads, maxInt(maxThreads, 1))
}

// LowerDPILevel returns the next lower step on the DPI ladder. At the
// ladder minimum it returns the minimum unchanged.
func LowerDPILevel(currentDPI int) int {
	for i, dpi := range DPILevels {
		if dpi >= currentDPI {
			return DPILevels[maxInt(0, i-1)]
		}
	}
	return DPILevels[0]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
