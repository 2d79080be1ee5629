package render

import "github.com/matzehuels/stepview/pkg/canvas"

const (
	nodeRadius      = 12
	pointRadius     = 3
	candidateRadius = 6
)

var (
	buildingStyle  = canvas.Style{Stroke: canvas.Black, Width: 1, Class: "building"}
	edgeStyle      = canvas.Style{Stroke: canvas.Light, Width: 1, Class: "edge"}
	treeEdgeStyle  = canvas.Style{Stroke: canvas.Black, Width: 3, Class: "tree-edge"}
	nodeStyle      = canvas.Style{Stroke: canvas.Black, Width: 2, Class: "node"}
	nodeLabelStyle = canvas.Style{Fill: canvas.Black, FontSize: 14, Class: "node-label"}
	rankStyle      = canvas.Style{Fill: canvas.Black, FontSize: 12, Class: "rank"}
	pointStyle     = canvas.Style{Fill: canvas.Black, Class: "point"}
	stackStyle     = canvas.Style{Stroke: canvas.Black, Width: 3, Class: "stack"}
	candidateStyle = canvas.Style{Stroke: canvas.Black, Width: 2, Class: "candidate"}
	hullStyle      = canvas.Style{Stroke: canvas.Black, Width: 3, Class: "hull"}
	skylineStyle   = canvas.Style{Stroke: canvas.Black, Width: 2, Class: "skyline"}
	statusStyle    = canvas.Style{Fill: canvas.Black, FontSize: 12, Class: "status"}
)
