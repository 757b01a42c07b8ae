package web

import "embed"

//go:embed static/index.html static/css/*.css static/js/*.js
var Static embed.FS
