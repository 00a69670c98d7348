package palette

import (
	"fmt"
	"html/template"
	"os"
)

// One card per color: a swatch, the name with its rank, hex and RGB codes,
// and a copy-to-clipboard button for the hex code.
const htmlReport = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Color Palette</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      min-height: 100vh;
      display: flex;
      justify-content: center;
      align-items: center;
      padding: 20px;
    }

    .container {
      background: white;
      border-radius: 20px;
      padding: 40px;
      box-shadow: 0 20px 60px rgba(0,0,0,0.3);
      max-width: 800px;
      width: 100%;
    }

    h1 {
      text-align: center;
      color: #333;
      margin-bottom: 30px;
      font-size: 2.5em;
    }

    .palette {
      display: flex;
      flex-direction: column;
      gap: 20px;
    }

    .color-card {
      display: flex;
      align-items: center;
      border-radius: 12px;
      overflow: hidden;
      box-shadow: 0 4px 15px rgba(0,0,0,0.1);
    }

    .color-swatch {
      width: 150px;
      height: 100px;
      flex-shrink: 0;
    }

    .color-info {
      padding: 20px;
      flex-grow: 1;
      background: #f8f9fa;
    }

    .color-name {
      font-size: 1.3em;
      font-weight: bold;
      color: #333;
      margin-bottom: 8px;
    }

    .color-hex {
      font-family: 'Courier New', monospace;
      font-size: 1.1em;
      color: #666;
      margin-bottom: 5px;
    }

    .color-rgb {
      font-family: 'Courier New', monospace;
      font-size: 0.9em;
      color: #999;
    }

    .copy-btn {
      background: #667eea;
      color: white;
      border: none;
      padding: 8px 16px;
      border-radius: 6px;
      cursor: pointer;
      font-size: 0.9em;
      margin-top: 10px;
    }

    .copy-btn:hover {
      background: #5568d3;
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>Color Palette</h1>
    <div class="palette">
{{- range .}}
      <div class="color-card">
        <div class="color-swatch" style="background-color: {{.Hex}};"></div>
        <div class="color-info">
          <div class="color-name">{{.Name}} #{{.Rank}}</div>
          <div class="color-hex">{{.Hex}}</div>
          <div class="color-rgb">{{.RGB}}</div>
          <button class="copy-btn" onclick="copyToClipboard('{{.Hex}}')">Copy Hex</button>
        </div>
      </div>
{{- end}}
    </div>
  </div>

  <script>
    function copyToClipboard(text) {
      navigator.clipboard.writeText(text).then(() => {
        alert('Copied ' + text + ' to clipboard!');
      });
    }
  </script>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("palette").Parse(htmlReport))

type swatch struct {
	Rank int
	Name string
	Hex  string
	RGB  string
}

// WriteHTML renders the palette report to path.
func WriteHTML(colors []Dominant, path string) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error writing HTML palette: %w", err)
		}
	}()

	swatches := make([]swatch, 0, len(colors))
	for i, c := range colors {
		swatches = append(swatches, swatch{
			Rank: i + 1,
			Name: c.Color.Name(),
			Hex:  c.Color.Hex(),
			RGB:  c.Color.String(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := htmlTemplate.Execute(f, swatches); err != nil {
		return err
	}

	return f.Close()
}
