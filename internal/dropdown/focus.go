package dropdown

// TargetKind identifies where a focus command points.
type TargetKind int

const (
	TargetTrigger TargetKind = iota
	TargetSearch
	TargetRow
)

func (k TargetKind) String() string {
	switch k {
	case TargetSearch:
		return "search"
	case TargetRow:
		return "row"
	default:
		return "trigger"
	}
}

// FocusTarget describes one focus move.
type FocusTarget struct {
	Kind TargetKind
	// Control is the id to return focus to for TargetTrigger.
	Control string
	// Index is the filtered row for TargetRow.
	Index int
	// Caret is the cursor position for TargetSearch.
	Caret   int
	Advance bool
	Reverse bool
}

// FocusCommand is a sequenced focus move awaiting application.
type FocusCommand struct {
	Seq    uint64
	Target FocusTarget
}

// FocusCoordinator hands out sequence numbers so that only the most recent focus command is applied.
// The zero value is ready to use.
type FocusCoordinator struct {
	seq uint64
}

// Issue sequences target and supersedes every command issued before it.
func (c *FocusCoordinator) Issue(target FocusTarget) FocusCommand {
	c.seq++
	return FocusCommand{Seq: c.seq, Target: target}
}

// Current reports whether cmd is still the latest issued command.
func (c *FocusCoordinator) Current(cmd FocusCommand) bool {
	return cmd.Seq != 0 && cmd.Seq == c.seq
}

// Cancel invalidates every outstanding command without issuing a new one.
func (c *FocusCoordinator) Cancel() {
	c.seq++
}

// Latest returns the sequence number of the newest command, or zero.
func (c *FocusCoordinator) Latest() uint64 {
	return c.seq
}

func targetFor(intent Intent) (FocusTarget, bool) {
	switch intent.Kind {
	case IntentFocusSearch:
		return FocusTarget{Kind: TargetSearch, Caret: intent.Caret}, true
	case IntentFocusRow:
		return FocusTarget{Kind: TargetRow, Index: intent.Index}, true
	case IntentRestoreFocus:
		return FocusTarget{
			Kind:    TargetTrigger,
			Control: intent.Control,
			Advance: intent.Advance,
			Reverse: intent.Reverse,
		}, true
	default:
		return FocusTarget{}, false
	}
}
