// Package dict provides the word dictionaries that steer breath-mark placement.
package dict

import "fmt"

// Category names one of the word lists.
type Category string

const (
	Proper         Category = "proper"           // Proper nouns, may embed "、"
	PauseProper    Category = "pause_proper"     // Proper nouns defined by an inner "、"
	NoSplitBefore  Category = "no_split_before"  // No break may follow these words
	NoSplitAfter   Category = "no_split_after"   // No break may precede these words
	Number         Category = "number"           // Digits and numerals that bind to quantifiers
	NoNumberAfter  Category = "no_number_after"  // No break between a number and these words
	NoNumberBefore Category = "no_number_before" // No break between these words and a number
)

// CategoryInfo describes a category for listings and default file lookup.
type CategoryInfo struct {
	ID          Category
	Name        string
	Description string
	File        string
}

// Categories lists every known category in display order.
var Categories = []CategoryInfo{
	{Proper, "专有词", "专有名词，如人名、地名等", "proper.txt"},
	{PauseProper, "顿号专有词", "含顿号的专有词，顿号处不拆，如“投、编、评”", "pause_proper.txt"},
	{NoSplitBefore, "之后不拆", "这些词后面不添加换气点，如“和”、“在”", "no_split_before.txt"},
	{NoSplitAfter, "之前不拆", "这些词前面不添加换气点，如“的”、“了”", "no_split_after.txt"},
	{Number, "数字", "能跟序数或量词接在一起的词", "number.txt"},
	{NoNumberAfter, "数字后不拆", "数字后面不能添加换气点的词，如“个”、“只”", "no_number_after.txt"},
	{NoNumberBefore, "数字前不拆", "数字前面不能添加换气点的词，如“第”、“周”", "no_number_before.txt"},
}

// AllCategories returns every category ID in display order.
func AllCategories() []Category {
	ids := make([]Category, len(Categories))
	for i, c := range Categories {
		ids[i] = c.ID
	}
	return ids
}

// Info returns the description of a category.
func Info(c Category) (CategoryInfo, bool) {
	for _, info := range Categories {
		if info.ID == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// ParseCategory converts a string to a known Category.
func ParseCategory(s string) (Category, error) {
	if _, ok := Info(Category(s)); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, s)
	}
	return Category(s), nil
}
