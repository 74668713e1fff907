// Package sphere draws a simple shaded sphere with an optional drop shadow,
// after the "python_fu_sphere" script.
//
// The sphere is lit by a radial gradient from a highlight point towards the
// far side of the sphere. When the light comes from a sufficiently oblique
// upper angle a soft elliptical shadow is multiplied onto the ground below.
//
// Render returns the ordered host commands without touching pixels; Draw
// issues the same commands to any host.Host, such as the raster backend.
package sphere
