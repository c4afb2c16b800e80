// Package normalize converts stored analysis records of any schema generation into canonical entries.
//
// Records are read field by field from loosely shaped JSON. Every legacy field name that was ever
// persisted stays readable: extractedSkills.byCategory, roundMapping round/why, checklist round,
// plan (title/items) and readinessScore.
package normalize

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/scoring"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	"github.com/tidwall/gjson"
)

// defaultRoundTitle is used when a round carries no usable title
const defaultRoundTitle = "Round"

// skillSources lists, per category, the canonical key followed by its legacy byCategory labels.
var skillSources = []struct {
	category types.SkillCategory
	key      string
	labels   []string
}{
	{types.CategoryCoreCS, "coreCS", []string{"Core CS"}},
	{types.CategoryLanguages, "languages", []string{"Languages"}},
	{types.CategoryWeb, "web", []string{"Web"}},
	{types.CategoryData, "data", []string{"Data"}},
	{types.CategoryCloudDevOps, "cloud", []string{"Cloud/DevOps"}},
	{types.CategoryTesting, "testing", []string{"Testing"}},
	{types.CategoryOther, "other", []string{"Other", "General"}},
}

// Entry normalizes a raw JSON record. It reports false when the record is not a
// JSON object or has no non-empty string id.
func Entry(raw []byte) (*types.Entry, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	return Result(gjson.ParseBytes(raw))
}

// Value normalizes an already decoded value, such as a types.Entry or a map.
// Leaves JSON cannot carry (NaN, infinities, funcs, channels) read as absent.
func Value(v any) (*types.Entry, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		raw, err = json.Marshal(plain(reflect.ValueOf(v)))
		if err != nil {
			return nil, false
		}
	}
	return Entry(raw)
}

// plain rebuilds v from maps, slices and scalars, replacing unencodable leaves with nil.
func plain(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return plain(v.Elem())
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = plain(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = plain(v.Index(i))
		}
		return out
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil
	case reflect.Struct:
		raw, err := json.Marshal(v.Interface())
		if err != nil {
			return nil
		}
		return json.RawMessage(raw)
	default:
		if !v.CanInterface() {
			return nil
		}
		return v.Interface()
	}
}

// Result normalizes a parsed record.
func Result(r gjson.Result) (*types.Entry, bool) {
	if !r.IsObject() {
		return nil, false
	}
	fields := r.Map()

	id := str(fields["id"], "")
	if id == "" {
		return nil, false
	}

	extracted := ExtractedSkills(fields["extractedSkills"])

	baseScore := 0
	if n, ok := number(first(fields["baseScore"], fields["readinessScore"])); ok {
		baseScore = score(n)
	}

	confidence := confidenceMap(fields["skillConfidenceMap"], &extracted)

	finalScore := scoring.FinalScore(baseScore, confidence)
	if n, ok := number(fields["finalScore"]); ok {
		finalScore = score(n)
	}

	createdAt := str(fields["createdAt"], "")

	return &types.Entry{
		ID:                 id,
		CreatedAt:          createdAt,
		UpdatedAt:          str(fields["updatedAt"], createdAt),
		Company:            str(fields["company"], ""),
		Role:               str(fields["role"], ""),
		JDText:             str(fields["jdText"], ""),
		ExtractedSkills:    extracted,
		RoundMapping:       roundMapping(fields["roundMapping"]),
		Checklist:          checklist(fields["checklist"]),
		Plan7Days:          plan(first(fields["plan7Days"], fields["plan"])),
		Questions:          stringList(fields["questions"]),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         finalScore,
		CompanyIntel:       companyIntel(fields["companyIntel"]),
	}, true
}

// ExtractedSkills unifies the canonical per-category shape and the legacy
// {byCategory: {<Label>: [...]}} shape. The fallback skills are injected when
// every category ends up empty.
func ExtractedSkills(r gjson.Result) types.ExtractedSkills {
	out := types.NewExtractedSkills()

	fields := objectFields(r)
	byCategory := objectFields(fields["byCategory"])

	for _, src := range skillSources {
		candidates := []gjson.Result{fields[src.key]}
		for _, label := range src.labels {
			candidates = append(candidates, byCategory[label])
		}
		out.Set(src.category, stringList(first(candidates...)))
	}

	out.ApplyFallback()
	return out
}

func roundMapping(r gjson.Result) []types.RoundMappingItem {
	items := make([]types.RoundMappingItem, 0)
	if !r.IsArray() {
		return items
	}
	for _, el := range r.Array() {
		f := objectFields(el)
		items = append(items, types.RoundMappingItem{
			RoundTitle:   str(first(f["roundTitle"], f["round"]), defaultRoundTitle),
			FocusAreas:   stringList(f["focusAreas"]),
			WhyItMatters: str(first(f["whyItMatters"], f["why"]), ""),
		})
	}
	return items
}

func checklist(r gjson.Result) []types.ChecklistRound {
	rounds := make([]types.ChecklistRound, 0)
	if !r.IsArray() {
		return rounds
	}
	for _, el := range r.Array() {
		f := objectFields(el)
		rounds = append(rounds, types.ChecklistRound{
			RoundTitle: str(first(f["roundTitle"], f["round"]), defaultRoundTitle),
			Items:      stringList(f["items"]),
		})
	}
	return rounds
}

func plan(r gjson.Result) []types.PlanDay {
	days := make([]types.PlanDay, 0)
	if !r.IsArray() {
		return days
	}
	for _, el := range r.Array() {
		f := objectFields(el)
		day := 0
		if n, ok := number(f["day"]); ok && math.Abs(n) <= math.MaxInt32 {
			day = int(math.Round(n))
		}
		days = append(days, types.PlanDay{
			Day:   day,
			Focus: str(first(f["focus"], f["title"]), ""),
			Tasks: stringList(first(f["tasks"], f["items"])),
		})
	}
	return days
}

// confidenceMap keeps only valid states for skills present in the entry.
func confidenceMap(r gjson.Result, extracted *types.ExtractedSkills) types.SkillConfidenceMap {
	out := make(types.SkillConfidenceMap)
	for skill, v := range objectFields(r) {
		c := types.Confidence(str(v, ""))
		if !c.Valid() || !extracted.Contains(skill) {
			continue
		}
		out[skill] = c
	}
	return out
}

func companyIntel(r gjson.Result) *types.CompanyIntel {
	if !r.IsObject() {
		return nil
	}
	f := r.Map()
	return &types.CompanyIntel{
		Name:        str(f["name"], ""),
		Industry:    str(f["industry"], ""),
		Size:        types.CompanySize(str(f["size"], "")),
		SizeLabel:   str(f["sizeLabel"], ""),
		HiringFocus: str(f["hiringFocus"], ""),
	}
}

// first returns the first result that is present and not null, mirroring a ?? b.
func first(results ...gjson.Result) gjson.Result {
	for _, r := range results {
		if r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

func objectFields(r gjson.Result) map[string]gjson.Result {
	if !r.IsObject() {
		return map[string]gjson.Result{}
	}
	return r.Map()
}

func str(r gjson.Result, fallback string) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return fallback
}

// stringList keeps the string elements of an array; anything else yields an empty list.
func stringList(r gjson.Result) []string {
	out := make([]string, 0)
	if !r.IsArray() {
		return out
	}
	for _, el := range r.Array() {
		if el.Type == gjson.String {
			out = append(out, el.Str)
		}
	}
	return out
}

// score rounds a stored score to an integer in [0, 100]
func score(n float64) int {
	return scoring.Clamp(int(math.Round(math.Max(-1, math.Min(101, n)))))
}

// number accepts JSON numbers and numeric strings, rejecting non-finite values.
func number(r gjson.Result) (float64, bool) {
	var n float64
	switch r.Type {
	case gjson.Number:
		n = r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
