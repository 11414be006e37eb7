package email

// Structural marker classes. These are the contract between the compiled
// markup and the responsive normalizer: the normalizer locates container
// tables, button rows, and headline text by these class names, so custom
// component renderers must reuse them to get correct mobile behavior.
const (
	// ClassEmailContainer marks the outer table representing the email's
	// 600px desktop container.
	ClassEmailContainer = "mg-email-container"

	// ClassButtonRow marks a table row container holding one button per cell.
	ClassButtonRow = "mg-button-row"

	// ClassButtonGap marks a spacer cell between buttons inside a button row.
	ClassButtonGap = "mg-button-gap"

	ClassButtonPrimary   = "mg-btn-primary"
	ClassButtonSecondary = "mg-btn-secondary"

	ClassHeadline    = "mg-headline"
	ClassSubheadline = "mg-subheadline"
)

// ContainerWidth is the fixed desktop width, in pixels, of the email
// container. Tables and images at or above the coercion threshold relative to
// this width are treated as desktop-fixed by the responsive pass.
const ContainerWidth = 600

// MobileBreakpoint is the max-width media condition the document shell ships
// and the responsive pass harvests.
const MobileBreakpoint = "600px"
