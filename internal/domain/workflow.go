package domain

import (
	"fmt"

	"github.com/pale-fox/exline/internal/adapter"
	"github.com/pale-fox/exline/internal/controller"
	m "github.com/pale-fox/exline/internal/model"
	"github.com/pale-fox/exline/internal/syntax"
)

// Workflow is the orchestrator: it sequences parse, locate, inspect,
// resolve, emit, and patch per candidate file and aggregates diagnostics.
type Workflow interface {
	// Migrate processes every candidate under opts.Root. It returns an error
	// only for an enumeration fault; per-unit faults are isolated, recorded
	// as diagnostics, and the run continues.
	Migrate(opts Options) (m.RunResult, error)

	// Plan inspects every candidate without staging or applying any edit.
	Plan(opts Options) ([]m.CandidatePlan, error)
}

type workflow struct {
	discovery adapter.Discovery
	ws        adapter.Workspace
	sink      m.Sink
	ui        controller.UI
}

// NewWorkflow creates a Workflow wired to the provided collaborators. A nil
// sink is tolerated and never changes outcomes.
func NewWorkflow(discovery adapter.Discovery, ws adapter.Workspace, sink m.Sink, ui controller.UI) Workflow {
	return &workflow{
		discovery: discovery,
		ws:        ws,
		sink:      sink,
		ui:        ui,
	}
}

func (w *workflow) Migrate(opts Options) (m.RunResult, error) {
	opts = opts.withDefaults()

	var run m.RunResult

	paths, err := w.discovery.Candidates(opts.Root)
	if err != nil {
		w.say(&run.Diagnostics, m.LevelFatal, opts.Root, fmt.Sprintf("candidate enumeration failed: %v", err))

		return run, fmt.Errorf("enumerating candidates under %s: %w", opts.Root, err)
	}

	if err := w.ui.Start(len(paths)); err != nil {
		return run, fmt.Errorf("starting ui: %w", err)
	}
	defer w.ui.Close()

	for _, path := range paths {
		w.ui.UnitStarted(path)

		res := w.processUnit(path, opts, &run.Diagnostics)
		run.Units = append(run.Units, res)

		w.ui.UnitFinished(res)
	}

	if err := w.ui.DisplaySummary(run); err != nil {
		return run, fmt.Errorf("rendering summary: %w", err)
	}

	return run, nil
}

func (w *workflow) Plan(opts Options) ([]m.CandidatePlan, error) {
	opts = opts.withDefaults()

	paths, err := w.discovery.Candidates(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("enumerating candidates under %s: %w", opts.Root, err)
	}

	plans := make([]m.CandidatePlan, 0, len(paths))

	for _, path := range paths {
		plan := m.CandidatePlan{Path: path}

		src, err := w.ws.ReadFile(path)
		if err != nil {
			plans = append(plans, plan)

			continue
		}

		if block, ok := LocateConfigBlock(syntax.Parse(src), ComponentMarker); ok {
			plan.Template = classifyConcern(block, templateEntry, templateURLEntry)
			plan.Styles = classifyConcern(block, stylesEntry, styleURLsEntry)
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// classifyConcern evaluates one concern without staging anything. The two
// concerns are always judged independently.
func classifyConcern(block *syntax.Node, litName, refName string) m.ConcernState {
	if HasEntry(block, refName) {
		return m.ConcernAlreadyMigrated
	}

	entry, ok := InspectEntry(block, litName)
	if !ok {
		return m.ConcernAbsent
	}

	if entry.Kind == m.EntryOther || len(entry.Values) == 0 {
		return m.ConcernUnusable
	}

	return m.ConcernWillMigrate
}

// concern bundles the names and rendering for one migratable entry pair.
type concern struct {
	litName string
	refName string
	ext     string
	render  func(ResourcePlan) string
}

// processUnit runs one candidate through the full state machine. The unit's
// SourceUnit lives only for the duration of this call.
func (w *workflow) processUnit(path m.Path, opts Options, diags *[]m.Diagnostic) m.UnitResult {
	res := m.UnitResult{Path: path}

	src, err := w.ws.ReadFile(path)
	if err != nil {
		res.Outcome = m.OutcomeFailed
		res.Err = err
		w.say(diags, m.LevelError, path, fmt.Sprintf("reading unit: %v", err))

		return res
	}

	file := syntax.Parse(src)

	block, ok := LocateConfigBlock(file, ComponentMarker)
	if !ok {
		res.Outcome = m.OutcomeNotCandidate
		w.say(diags, m.LevelDebug, path, "no component configuration block")

		return res
	}

	entryCount := len(block.Children)
	patcher := NewPatcher(src)

	var specs []m.ExternalFileSpec

	concerns := []concern{
		{litName: templateEntry, refName: templateURLEntry, ext: opts.TemplateExt, render: templateRefText},
		{litName: stylesEntry, refName: styleURLsEntry, ext: opts.StyleExt, render: styleRefText},
	}

	anyMigrated := false

	for _, c := range concerns {
		state := w.stageConcern(src, path, block, c, entryCount, patcher, &specs, diags)
		if state == m.ConcernAlreadyMigrated {
			anyMigrated = true
		}
	}

	if patcher.Empty() {
		if anyMigrated {
			res.Outcome = m.OutcomeAlreadyMigrated
		} else {
			res.Outcome = m.OutcomeNoLiteral
		}

		return res
	}

	if opts.DryRun {
		res.Outcome = m.OutcomePlanned
		res.Diff = unifiedPreview(path, src, patcher.Apply())

		return res
	}

	return w.commitUnit(res, patcher, specs, diags)
}

// stageConcern evaluates one concern for a unit and, when it is migratable,
// stages the entry's edit and collects the external files to emit.
func (w *workflow) stageConcern(
	src string,
	path m.Path,
	block *syntax.Node,
	c concern,
	entryCount int,
	patcher *Patcher,
	specs *[]m.ExternalFileSpec,
	diags *[]m.Diagnostic,
) m.ConcernState {
	if HasEntry(block, c.refName) {
		w.say(diags, m.LevelDebug, path, fmt.Sprintf("%s already present; %s migration skipped", c.refName, c.litName))

		return m.ConcernAlreadyMigrated
	}

	entry, ok := InspectEntry(block, c.litName)
	if !ok {
		return m.ConcernAbsent
	}

	if entry.Kind == m.EntryOther {
		w.say(diags, m.LevelWarn, path, fmt.Sprintf("%s: %v", c.litName, ErrUnusableLiteral))

		return m.ConcernUnusable
	}

	if len(entry.Values) == 0 {
		w.say(diags, m.LevelDebug, path, fmt.Sprintf("%s is an empty list; nothing to extract", c.litName))

		return m.ConcernUnusable
	}

	plan := PlanResources(path, entry.Values, c.ext)
	edit := ResolveEdit(src, entry, entryCount, c.render(plan))

	if err := patcher.Stage(edit); err != nil {
		w.say(diags, m.LevelError, path, fmt.Sprintf("%s: %v: %v", c.litName, ErrMissingNode, err))

		return m.ConcernUnusable
	}

	*specs = append(*specs, plan.Files...)

	return m.ConcernWillMigrate
}

// commitUnit applies the unit's transaction: emit external files, then write
// the patched source. A fault before the source write leaves the source
// untouched.
func (w *workflow) commitUnit(res m.UnitResult, patcher *Patcher, specs []m.ExternalFileSpec, diags *[]m.Diagnostic) m.UnitResult {
	patched := patcher.Apply()

	for _, spec := range specs {
		created, err := w.ws.Create(spec.Path, spec.Content)
		if err != nil {
			res.Outcome = m.OutcomeFailed
			res.Err = err
			w.say(diags, m.LevelError, res.Path, fmt.Sprintf("emitting %s: %v", spec.Path, err))

			return res
		}

		if !created {
			// Deliberate non-overwrite policy: existing content is never
			// verified or replaced, but the entry is still rewritten to
			// reference the path.
			w.say(diags, m.LevelWarn, res.Path, fmt.Sprintf("%s already exists; keeping its content", spec.Path))

			continue
		}

		res.Created = append(res.Created, spec.Path)
	}

	if err := w.ws.WriteFile(res.Path, patched); err != nil {
		res.Outcome = m.OutcomeFailed
		res.Err = err
		w.say(diags, m.LevelError, res.Path, fmt.Sprintf("writing unit: %v", err))

		return res
	}

	res.Outcome = m.OutcomeCommitted
	w.say(diags, m.LevelInfo, res.Path, "migrated inline resources")

	return res
}

// say records a diagnostic in the run aggregate and forwards it to the sink
// when one is present.
func (w *workflow) say(diags *[]m.Diagnostic, level m.Level, path m.Path, msg string) {
	d := m.Diagnostic{Level: level, Path: path, Message: msg}
	*diags = append(*diags, d)

	if w.sink != nil {
		w.sink.Emit(d)
	}
}
