package params

const (
	// SpeedOfSound in meters per second at 20°C.
	SpeedOfSound = 343.0

	// WellWidthCM is the default manufacturable well width in centimeters (1.5").
	WellWidthCM = 3.81

	// AspectRatioMin and AspectRatioMax bound cols/rows for designs that
	// remain roughly square.
	AspectRatioMin = 0.4
	AspectRatioMax = 2.5

	// TrialDivisorLimit is the largest trial divisor. A composite cofactor left
	// over after trial division is handed to a Pollard/ECM factorizer.
	TrialDivisorLimit = 1 << 16

	// MaxModulus bounds every modulus accepted by the kernel, so that products
	// of two residues never overflow 64 bits.
	MaxModulus = 1 << 32

	// MaxCells bounds rows·cols for a single layout.
	MaxCells = 1 << 24

	// CacheBytes is the default byte budget of the kernel cache.
	CacheBytes = 32 << 20

	// DigestLengthBytes is the size of a layout fingerprint.
	DigestLengthBytes = 32
)
