// Package glow implements the soft light drawn under overlay strokes.
//
// A glow is a drop shadow with no offset: the alpha coverage of a layer
// is blurred with a separable Gaussian, tinted with the glow color and
// composited under the layer. The blur radius follows the HTML canvas
// shadowBlur convention, where the Gaussian sigma is half the radius.
//
// Pixmap data is premultiplied RGBA, as gg.Pixmap stores it; both the
// glow and Over composite in premultiplied space.
package glow
