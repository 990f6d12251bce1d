// Package pointset provides routines for working with sets of 2D points:
// piecewise-linear interpolation, conversion of point sequences to line
// segments, and delegation of fitting operations to a geometry engine.
//
// # Interpolation
//
// [Interpolate] performs first degree interpolation over a point set that is
// sorted by x. It finds the bracketing segment of the query with a binary
// search (see [LocateX] and the more general [SearchFunc]) and evaluates that
// segment's supporting line. Queries outside of the point set's range are
// extrapolated along the first or last segment. [InterpolateAll] and
// [Interpolator] provide batched and prepared forms of the same operation.
//
// The point set must be sorted ascending by x. This precondition is not
// checked, and unsorted input yields meaningless results.
//
// # Polylines
//
// [Polyline] and [IntPolyline] convert a sequence of points into the
// sequence of [Line] or [IntLine] segments connecting them. Closed polylines
// start with the segment connecting the last point to the first.
//
// # Geometry engines
//
// Fitting a line or an ellipse, computing the convex hull, and computing the
// bounding rectangle are delegated to an [Engine]. An [Adapter] marshals
// points into the engine's [Buffer] layout, calls the engine, and converts
// the results back into this package's types. The geomengine sub-package
// provides a pure Go engine.
//
// # Errors
//
// Invalid input that can be detected cheaply, such as too few points, is
// reported with [ErrInvalidArgument]. Interpolating over a vertical segment
// fails with [ErrUndefinedInterpolation]. Errors returned by an engine are
// wrapped in [ErrEngineFailure].
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route its log output
// to a [log/slog.Logger].
package pointset
