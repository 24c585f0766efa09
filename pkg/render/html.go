package render

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/grid"
	"github.com/matzehuels/huegrid/pkg/notify"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; font-family: system-ui, sans-serif; background: #111; color: #eee; }
    main { display: flex; gap: 1rem; padding: 1rem; align-items: flex-start; }
    .grid svg { max-width: 100%; height: auto; display: block; }
    form.panel { background: #222; padding: 0.75rem 1rem; border-radius: 6px; min-width: 12rem; }
    form.panel h2 { margin: 0 0 0.5rem; font-size: 1rem; }
    form.panel label { display: block; margin: 0.4rem 0; }
    form.panel input[type=number], form.panel select { width: 100%; }
    #toasts { position: fixed; top: 1rem; right: 1rem; display: flex; flex-direction: column; gap: 0.5rem; z-index: 10; }
    .toast { padding: 0.5rem 0.75rem; border-radius: 4px; color: #fff; box-shadow: 0 2px 6px rgba(0,0,0,.4); }
    .toast.success { background: #2e7d32; }
    .toast.error { background: #c62828; }
    .toast.info { background: #1565c0; }
  </style>
</head>
<body>
  <main>
    <div class="grid">{{.SVG}}</div>
    <form class="panel" method="get" action="">
      <h2>Config</h2>
      <label>Rows <input type="number" name="rows" min="{{.MinRows}}" max="{{.MaxRows}}" value="{{.Config.Rows}}"></label>
      <label>Columns <input type="number" name="cols" min="{{.MinCols}}" max="{{.MaxCols}}" value="{{.Config.Cols}}"></label>
      <label><input type="checkbox" name="labels" value="true"{{if .Config.ShowLabel}} checked{{end}}> Show Color</label>
      <label>Color type
        <select name="format">
          {{- range .Formats}}
          <option value="{{.}}"{{if eq . $.Config.Format}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
      </label>
      <input type="hidden" name="labels" value="false">
      <button type="submit">Apply</button>
    </form>
  </main>
  <div id="toasts"></div>
  <script>
    window.huegridNotify = function (kind, message) {
      const box = document.getElementById('toasts');
      const el = document.createElement('div');
      el.className = 'toast ' + kind;
      el.textContent = message;
      box.prepend(el);
      while (box.children.length > {{.MaxToasts}}) box.lastChild.remove();
      setTimeout(() => el.remove(), {{.ToastMillis}});
    };
    document.querySelectorAll('form.panel input, form.panel select').forEach(el => {
      el.addEventListener('change', () => el.form.submit());
    });
  </script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Config      grid.Config
	Formats     []color.Format
	SVG         template.HTML
	MinRows     int
	MaxRows     int
	MinCols     int
	MaxCols     int
	MaxToasts   int
	ToastMillis int64
}

// RenderHTML renders a standalone page: the interactive SVG grid, a settings
// form that reloads the page with new query parameters, and a toast area in
// the top-right corner that reports clipboard results.
func RenderHTML(cfg grid.Config, cells []grid.Cell) ([]byte, error) {
	data := pageData{
		Title:       "huegrid",
		Config:      cfg,
		Formats:     color.Formats,
		SVG:         template.HTML(RenderSVG(cells)),
		MinRows:     grid.MinRows,
		MaxRows:     grid.MaxRows,
		MinCols:     grid.MinCols,
		MaxCols:     grid.MaxCols,
		MaxToasts:   notify.DefaultMax,
		ToastMillis: notify.DefaultTTL.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
