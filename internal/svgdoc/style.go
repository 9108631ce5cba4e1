package svgdoc

// RulerCSS styles rulers and proportion guides.
const RulerCSS = `.primary {
    fill: none;
    stroke-width: 2px;
    stroke: #000000;
}
.secondary {
    fill: none;
    stroke-width: 1px;
    stroke: #000000;
    stroke-miterlimit: 4;
    stroke-dasharray: 1, 2;
    stroke-dashoffset: 0;
}`

// MarkerCSS styles fiducial markers.
const MarkerCSS = `.background {
    fill: #FFFFFF;
    stroke: #FFFFFF;
    stroke-width: 1px;
    stroke-linejoin: round;
}
.foreground {
    fill: #000000;
    stroke: #000000;
    stroke-width: 1px;
    stroke-linejoin: round;
}`

const (
	ClassPrimary    = "primary"
	ClassSecondary  = "secondary"
	ClassBackground = "background"
	ClassForeground = "foreground"
)
