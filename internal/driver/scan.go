package driver

import (
	"context"
	"fmt"
	"strconv"

	"lintscan/internal/config"
	"lintscan/internal/diag"
	"lintscan/internal/observ"
	"lintscan/internal/scan"
	"lintscan/internal/suppress"
	"lintscan/internal/trace"
)

// Result is the outcome of scanning one unit.
type Result struct {
	Path   string
	Bag    *diag.Bag
	Errors []error // *RuleError values, in occurrence order
	Frames int
	Cached bool
	Timing observ.Report
}

// ScanFile runs rules over unit. Rule failures are collected in
// Result.Errors and do not stop the scan; the returned error is only set
// when ctx is done before the scan starts.
func ScanFile(ctx context.Context, cfg *config.Config, unit Unit, rules []Rule) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "scan", trace.CurrentSpan(ctx)).WithExtra("path", unit.Path)
	timer := observ.NewTimer()

	tree := scan.NewTree(unit.Path, cfg, scan.Options{Tracer: tracer, TraceParent: span.ID()})
	w := &walker{path: unit.Path, rules: enabledRules(cfg, rules)}

	idx := timer.Begin("walk")
	if unit.Root != nil {
		w.visit(tree.Root(), unit.Root)
	}
	timer.End(idx, fmt.Sprintf("%d frames", tree.Len()))

	idx = timer.Begin("filter")
	bag := collect(tree, cfg)
	timer.End(idx, fmt.Sprintf("%d kept", bag.Len()))

	span.WithExtra("frames", strconv.Itoa(tree.Len())).
		WithExtra("diagnostics", strconv.Itoa(bag.Len())).
		End(fmt.Sprintf("%d errors", len(w.errs)))

	return &Result{
		Path:   unit.Path,
		Bag:    bag,
		Errors: w.errs,
		Frames: tree.Len(),
		Timing: timer.Report(),
	}, nil
}

func enabledRules(cfg *config.Config, rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if cfg.RuleEnabled(r.Name()) {
			out = append(out, r)
		}
	}
	return out
}

type walker struct {
	path  string
	rules []Rule
	errs  []error
}

// visit applies region to ref, runs the rules and descends.
func (w *walker) visit(ref scan.Ref, region *Region) {
	if region.Component != "" {
		ref.SetComponentName(region.Component)
	}
	if region.Kind != scan.KindNone {
		ref.SetKind(region.Kind)
	}
	if region.Kind == scan.KindComponent {
		ref.SetInComponent(true)
	}
	if region.Func != nil {
		ref.SetFunctionInfo(region.Func)
	}
	if region.Tokens != nil {
		ref.AddSuppressions(suppress.FromTokens(region.Tokens)...)
	}

	switch region.Kind {
	case scan.KindComponent:
		ref.Stack().Push(region.Kind, ref.ResolveComponentName())
		defer ref.Stack().Pop()
	case scan.KindFunction:
		ref.Stack().Push(region.Kind, ref.FunctionName())
		defer ref.Stack().Pop()
	}

	for _, rule := range w.rules {
		if err := check(rule, ref, region); err != nil {
			w.errs = append(w.errs, &RuleError{Rule: rule.Name(), File: w.path, Err: err})
		}
	}
	for _, child := range region.Children {
		if child == nil {
			continue
		}
		w.visit(derive(ref, child), child)
	}
}

// check runs one rule, turning a panic into an error so that the remaining
// rules and regions still run.
func check(rule Rule, ref scan.Ref, region *Region) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanic, p)
		}
	}()
	return rule.Check(ref, region)
}

func derive(ref scan.Ref, region *Region) scan.Ref {
	if region.Element == nil && region.Tokens == nil && region.Assignment != nil {
		return ref.DeriveInAssignment(*region.Assignment)
	}
	var child scan.Ref
	if region.Tokens != nil {
		child = ref.DeriveWithTokens(region.Element, region.Tokens)
	} else {
		child = ref.Derive(region.Element)
	}
	if region.Assignment != nil {
		child.SetInAssignment(*region.Assignment)
	}
	return child
}

// collect keeps the diagnostics of every frame that are neither suppressed
// along the frame's ancestry nor disabled by config. Suppressions are all
// known by now, so the order in which findings were recorded does not matter.
func collect(tree *scan.Tree, cfg *config.Config) *diag.Bag {
	all := diag.NewBag(0)
	for ref := range tree.All() {
		for _, d := range ref.Diagnostics() {
			if ref.IsSuppressed(d) || !cfg.Enabled(d.Code) {
				continue
			}
			d.Severity = cfg.SeverityOf(d.Code, d.Severity)
			all.Add(d)
		}
	}
	all.Sort()

	out := diag.NewBag(cfg.MaxDiagnostics())
	for _, d := range all.Items() {
		out.Add(d)
	}
	return out
}
