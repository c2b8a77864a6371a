package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph      = "BuildGraph"
	methodApply           = "Apply"
	methodGridNodes       = "GridNodes"
	methodCoordinateNodes = "CoordinateNodes"
	methodMaskNodes       = "MaskNodes"
	methodGeoGrid         = "GeoGrid"
	methodGeoInferred     = "GeoInferred"
	methodSocialBA        = "SocialBA"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest row or column count of a lattice.
const MinGridDim = 1

// MinAttachment is the smallest Barabási–Albert attachment count m.
const MinAttachment = 1

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is stamped on GEO and SOCIAL edges unless overridden.
const DefaultEdgeWeight = 1.0

// DefaultCoordTolerance bounds |c - round(c)| for integer-like coordinates.
const DefaultCoordTolerance = 1e-6
