// ABOUTME: Output metadata computed over the emitted document after the walk
// ABOUTME: Uses goquery to count elements, semantic tags, and class tokens

package builder

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"codegen-app-api/core/domain"
)

// Reproduction rate is a heuristic proxy for how much design intent
// survived, not a measured diff: a fixed base plus a bonus scaled by the
// share of semantic tags.
const (
	reproductionBase  = 0.85
	reproductionBonus = 0.15
)

// semanticTags is the set of tags that count toward the reproduction bonus.
var semanticTags = map[string]bool{
	"header": true, "nav": true, "main": true, "footer": true,
	"section": true, "article": true, "aside": true, "button": true,
	"form": true, "ul": true, "li": true, "strong": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ComputeMetadata derives the output metadata from the emitted document.
// Always computed on the pretty (unminified) form so scores stay stable
// across output modes.
func ComputeMetadata(html string) domain.Metadata {
	meta := domain.Metadata{
		TotalLines: strings.Count(html, "\n") + 1,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Unparseable output still gets line-level scoring
		meta.ReproductionRate = reproductionBase
		meta.CodeQualityScore = qualityScore(html, meta)
		return meta
	}

	semanticCount := 0
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		meta.ComponentCount++
		if class, ok := sel.Attr("class"); ok {
			meta.TailwindClasses += len(strings.Fields(class))
		}
		if semanticTags[goquery.NodeName(sel)] {
			semanticCount++
		}
	})

	meta.ReproductionRate = reproductionRate(semanticCount, meta.ComponentCount)
	meta.CodeQualityScore = qualityScore(html, meta)
	return meta
}

// reproductionRate clamps the heuristic to 1.0 and rounds to two decimals.
func reproductionRate(semanticCount, totalCount int) float64 {
	rate := reproductionBase
	if totalCount > 0 {
		rate += reproductionBonus * float64(semanticCount) / float64(totalCount)
	}
	if rate > 1 {
		rate = 1
	}
	return math.Round(rate*100) / 100
}

// qualityScore starts at 100 and subtracts fixed penalties for markup
// smells, flooring at 0.
func qualityScore(html string, meta domain.Metadata) int {
	score := 100

	if oddIndentShare(html) > 0.10 {
		score -= 5
	}

	if meta.ComponentCount > 0 {
		avg := float64(meta.TailwindClasses) / float64(meta.ComponentCount)
		if avg > 10 {
			score -= 10
		} else if avg < 2 {
			score -= 5
		}
	}

	if meta.TotalLines > 1000 {
		score -= 5
	}

	if !strings.Contains(html, "<!DOCTYPE html>") {
		score -= 10
	}

	if !strings.Contains(html, `charset="UTF-8"`) {
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	return score
}

// oddIndentShare is the fraction of indented lines whose leading spaces are
// not a multiple of two.
func oddIndentShare(html string) float64 {
	lines := strings.Split(html, "\n")
	if len(lines) == 0 {
		return 0
	}

	odd := 0
	for _, line := range lines {
		indent := 0
		for _, r := range line {
			if r != ' ' {
				break
			}
			indent++
		}
		if indent%2 != 0 {
			odd++
		}
	}
	return float64(odd) / float64(len(lines))
}
