// Package gldraw implements [glui.Renderer] over OpenGL 4.6 core profile.
package gldraw

import "errors"

var errNoCGO = errors.New("OpenGL drawing requires CGo and is not supported on TinyGo")

// Fragment shading modes selected with the uMode uniform.
const (
	modeFlat = iota
	modeDisk
	modeText
)

// Per vertex: position xyz and texture coordinates uv.
const floatsPerVertex = 5

// maxTextCache bounds the number of label textures kept alive.
const maxTextCache = 256

const vertexSource = `#version 460
in vec3 aPos;
in vec2 aUV;
uniform mat4 uMVP;
uniform float uPointSize;
out vec2 vUV;
void main() {
	vUV = aUV;
	gl_PointSize = uPointSize;
	gl_Position = uMVP * vec4(aPos, 1.0);
}
` + "\x00"

const fragmentSource = `#version 460
in vec2 vUV;
uniform vec4 uColor;
uniform int uMode;
uniform sampler2D uTex;
out vec4 fragColor;
void main() {
	if (uMode == 1) {
		vec2 d = gl_PointCoord - vec2(0.5);
		if (dot(d, d) > 0.25) {
			discard;
		}
		fragColor = uColor;
	} else if (uMode == 2) {
		fragColor = vec4(uColor.rgb, uColor.a * texture(uTex, vUV).r);
	} else {
		fragColor = uColor;
	}
}
` + "\x00"
