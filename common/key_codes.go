package common

// Virtual key and mouse button codes for host input handling.
// These values match GLFW codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// MouseButtonLeft is the primary button, matching glfw.MouseButtonLeft.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const MouseButtonLeft = 0
