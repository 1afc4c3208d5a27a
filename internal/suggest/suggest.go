// Package suggest generates human-readable content ideas for a collaboration
// offer from its category, content type and reward type. Pure lookup and
// template fill: no state, no side effects, identical inputs yield the
// identical sequence.
package suggest

import (
	"fmt"
	"strings"
)

// ideaTemplates maps a normalized content type to its idea templates.
// %s is the offer category.
var ideaTemplates = map[string][]string{
	"post": {
		"A styled photo post featuring the product in an everyday %s setting",
		"A before/after carousel showing the product's impact on your %s routine",
		"A caption story about discovering the brand through your %s journey",
	},
	"story": {
		"A day-in-the-life story sequence weaving the product into your %s content",
		"A poll sticker story asking followers about their %s preferences",
		"A swipe-up story with a quick demo and your honest first impression in %s",
	},
	"reel": {
		"A 30-second transition reel revealing the product as a %s essential",
		"A trending-audio reel with three quick %s tips featuring the product",
		"A reaction reel unboxing the product for your %s audience",
	},
	"video": {
		"A full review video testing the product against your usual %s picks",
		"A tutorial video building a %s look or setup around the product",
		"A Q&A video answering follower questions about the brand and %s",
	},
}

// genericTemplates backs content types with no dedicated table
var genericTemplates = []string{
	"An authentic first-impressions piece introducing the brand to your %s audience",
	"A comparison piece placing the product alongside your current %s favorites",
	"A behind-the-scenes look at how the product fits into your %s workflow",
}

// rewardClosers appends a reward-framing idea per reward type
var rewardClosers = map[string]string{
	"monetary": "Disclose the paid partnership up front and share why the %s collaboration felt like a natural fit",
	"product":  "Show the gifted product arriving and give a genuine verdict your %s followers can trust",
	"both":     "Combine an unboxing of the gifted product with a transparent note on the paid %s partnership",
}

// Suggestions returns an ordered, finite list of content ideas for the given
// category, content type and reward type. Calling again with identical
// inputs returns the identical sequence.
func Suggestions(category, contentType, rewardType string) []string {
	cat := strings.TrimSpace(category)
	if cat == "" {
		cat = "lifestyle"
	}

	templates, ok := ideaTemplates[normalize(contentType)]
	if !ok {
		templates = genericTemplates
	}

	ideas := make([]string, 0, len(templates)+1)
	for _, tpl := range templates {
		ideas = append(ideas, fmt.Sprintf(tpl, cat))
	}

	if closer, ok := rewardClosers[normalize(rewardType)]; ok {
		ideas = append(ideas, fmt.Sprintf(closer, cat))
	}

	return ideas
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
