package server

import (
	"bytes"
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: sans-serif; }
.chart { display: flex; justify-content: center; }
</style>
</head>
<body>
<div class="chart" data-responsive="{{.Responsive}}">{{.SVG}}</div>
<script>
(function () {
  var chart = document.querySelector(".chart");

  function replace(resp) {
    if (resp.status === 200) {
      return resp.text().then(function (svg) { chart.innerHTML = svg; });
    }
    if (resp.status >= 500) {
      chart.innerHTML = "";
    }
  }

  chart.addEventListener("click", function (e) {
    var caption = e.target.closest(".aText");
    if (!caption) {
      return;
    }
    var field = encodeURIComponent(caption.getAttribute("value"));
    fetch("/api/select?field=" + field, { method: "POST" }).then(replace);
  });

  function resize() {
    var q = "width=" + window.innerWidth + "&height=" + window.innerHeight;
    fetch("/api/resize?" + q, { method: "POST" }).then(replace);
  }

  if (chart.dataset.responsive === "true") {
    window.addEventListener("resize", resize);
    resize();
  }
})();
</script>
</body>
</html>
`))

type pageData struct {
	Title      string
	Responsive bool
	SVG        template.HTML
}

// inline drops the XML prolog so the document can sit inside HTML.
func inline(svg []byte) template.HTML {
	if i := bytes.Index(svg, []byte("<svg")); i > 0 {
		svg = svg[i:]
	}
	return template.HTML(svg)
}
