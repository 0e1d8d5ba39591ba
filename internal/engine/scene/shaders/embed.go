// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SphereVertexShader is the vertex shader for the anchor sphere.
//
//go:embed sphere.vert
var SphereVertexShader string

// SphereFragmentShader is the fragment shader for the anchor sphere.
//
//go:embed sphere.frag
var SphereFragmentShader string

// LabelVertexShader is the vertex shader for label quads.
//
//go:embed label.vert
var LabelVertexShader string

// LabelFragmentShader is the fragment shader for label quads.
//
//go:embed label.frag
var LabelFragmentShader string
