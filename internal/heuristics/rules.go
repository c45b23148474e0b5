package heuristics

import "strings"

// Rule pairs trigger substrings with a human-readable suggestion and a
// suggested fix. Triggers match case-insensitively; a rule fires when
// any trigger is present and, if Requires is set, any required
// substring is present as well.
type Rule struct {
	Triggers   []string
	Requires   []string
	Suggestion string
	Fix        string
}

// Rules is evaluated top to bottom; output order follows this order.
var Rules = []Rule{
	{
		Triggers:   []string{"modulenotfounderror", "module not founderror"},
		Suggestion: "ModuleNotFoundError detected — missing Python package. Add the missing package to requirements.txt and redeploy.",
		Fix:        "Add the missing package to requirements.txt; ensure correct package name/version; then redeploy.",
	},
	{
		Triggers:   []string{"syntaxerror"},
		Suggestion: "SyntaxError detected — check indentation, parentheses or invalid syntax in the mentioned file and line number.",
		Fix:        "Open the file and inspect the indicated line number for syntax issues; run `python -m py_compile <file>` locally.",
	},
	{
		Triggers:   []string{"pip install"},
		Requires:   []string{"failed", "error"},
		Suggestion: "pip install failure — try pinning dependency versions or increasing build resources. Check wheels vs source build.",
		Fix:        "Pin dependency versions in requirements.txt, try `pip wheel` for heavy packages, or add system dependencies in your build script.",
	},
	{
		Triggers:   []string{"permission denied"},
		Suggestion: "Permission denied — check file permissions and user running the build step.",
		Fix:        "Ensure build scripts are executable and the build user owns the files it writes.",
	},
	{
		Triggers:   []string{"out of memory", "oom"},
		Suggestion: "Out of memory — build is exceeding memory limits; try smaller build or increase plan.",
		Fix:        "Use a smaller build, split heavy dependencies, or upgrade the service plan.",
	},
	{
		Triggers:   []string{"npm err!"},
		Suggestion: "npm failure detected — a Node dependency or script failed during the build.",
		Fix:        "Check package.json scripts and the named package; delete the lockfile cache and retry, or pin the failing dependency.",
	},
	{
		Triggers:   []string{"command not found"},
		Suggestion: "Command not found — a tool used by the build is not installed in the build image.",
		Fix:        "Install the missing tool in the build command or switch to an image/runtime that provides it.",
	},
	{
		Triggers:   []string{"no space left on device"},
		Suggestion: "Disk full — the build ran out of disk space.",
		Fix:        "Reduce build artifacts and caches, or move to a plan with more disk.",
	},
}

// Result is the output of one analysis pass: every suggestion whose
// rule fired, in rule definition order, plus the matching fixes.
type Result struct {
	Suggestions []string
	Fixes       []string
}

// Analyze runs every rule against the text and collects the ones that
// fire. Pure function: no state survives between calls. Empty text
// yields an empty result. Each rule fires at most once no matter how
// often its trigger appears.
func Analyze(text string) Result {
	result := Result{
		Suggestions: []string{},
		Fixes:       []string{},
	}
	if text == "" {
		return result
	}

	lower := strings.ToLower(text)
	for _, rule := range Rules {
		if !containsAny(lower, rule.Triggers) {
			continue
		}
		if len(rule.Requires) > 0 && !containsAny(lower, rule.Requires) {
			continue
		}
		result.Suggestions = append(result.Suggestions, rule.Suggestion)
		result.Fixes = append(result.Fixes, rule.Fix)
	}
	return result
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
