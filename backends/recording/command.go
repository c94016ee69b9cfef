package recording

import "github.com/gogpu/canvas"

// CommandType identifies the type of a command.
// Each command type corresponds to one Backend capability call.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save native state
	CmdRestore                    // Restore native state
	CmdClip                       // Intersect the clip with a path

	// Drawing commands
	CmdFill      // Fill a path with a resolved paint
	CmdStroke    // Stroke a path
	CmdDrawText  // Draw a line of text
	CmdDrawImage // Draw an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdRestore:   "Restore",
	CmdClip:      "Clip",
	CmdFill:      "Fill",
	CmdStroke:    "Stroke",
	CmdDrawText:  "DrawText",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// PaintRef is a reference to a resolved paint in the resource pool.
type PaintRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand pushes the native clip and compositing state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the native state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ClipCommand intersects the clip with a path.
type ClipCommand struct {
	Path      PathRef
	Transform canvas.AffineTransform
	Mode      canvas.WindingMode
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillCommand fills a path with a paint.
type FillCommand struct {
	Path      PathRef
	Transform canvas.AffineTransform
	Paint     PaintRef
	Style     canvas.FillStyle
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes a path. Width and dash are in device units.
type StrokeCommand struct {
	Path      PathRef
	Transform canvas.AffineTransform
	Style     canvas.StrokeStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// DrawTextCommand draws one line of text.
type DrawTextCommand struct {
	Run canvas.TextRun
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawImageCommand draws an image into a rectangle.
type DrawImageCommand struct {
	Image ImageRef
	Dst   canvas.Rect
	Style canvas.ImageStyle
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
