// Package render turns assembled tooltips and legends into HTML or
// terminal text, and writes standalone chart pages through go-echarts.
package render
