package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Link Refresher</title>
  <style>
    body { font-family: sans-serif; max-width: 800px; margin: 40px auto; padding: 0 16px; }
    button { font-size: 1.1em; padding: 10px 24px; cursor: pointer; }
    button:disabled { cursor: wait; opacity: 0.6; }
    pre { background: #f4f4f4; padding: 16px; white-space: pre-wrap; word-break: break-all; }
  </style>
</head>
<body>
  <h1>Link Refresher</h1>
  <button id="run-button" type="button">Refresh Links</button>
  <pre id="output"></pre>
  <script>
    const button = document.getElementById('run-button');
    const output = document.getElementById('output');
    button.addEventListener('click', async () => {
      button.disabled = true;
      output.textContent = 'Refreshing links, please wait... (about 1 second per link)';
      try {
        const response = await fetch('/run-script');
        output.textContent = await response.text();
      } catch (err) {
        output.textContent = 'Request failed: ' + err;
      } finally {
        button.disabled = false;
      }
    });
  </script>
</body>
</html>
`

// Index serves the single-button page
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// NotFound answers every unknown path or method
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 Not Found")
}
