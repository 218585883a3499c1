package handlers

import (
	"bytes"
	"html/template"
	"os"

	"github.com/redhat-appstudio/my-app/apis/status"
	"github.com/redhat-appstudio/my-app/internal/version"
	"github.com/redhat-appstudio/my-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>My App - {{.Environment}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 40px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            min-height: 100vh;
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
        }
        .container {
            background: rgba(255,255,255,0.1);
            padding: 40px;
            border-radius: 10px;
            text-align: center;
        }
        .env-badge {
            background: rgba(255,255,255,0.2);
            padding: 8px 16px;
            border-radius: 20px;
            display: inline-block;
            margin: 10px 0;
            font-weight: bold;
        }
        .api-info {
            margin-top: 30px;
            padding: 20px;
            background: rgba(255,255,255,0.1);
            border-radius: 8px;
            text-align: left;
        }
        .api-info a { color: #ffeb3b; }
    </style>
</head>
<body>
    <div class="container">
        <h1>My App is Running!</h1>
        <div class="env-badge">Environment: {{.Environment}}</div>
        <p>Welcome to your containerized Go application</p>
        <p>Hostname: {{.Hostname}}</p>
        <p>Version: {{.Version}}</p>
        <div class="api-info">
            <h3>Available Endpoints:</h3>
            <ul>
            {{- range .Links}}
                <li><a href="{{.Path}}">{{.Path}}</a> - {{.Description}}</li>
            {{- end}}
            </ul>
        </div>
    </div>
</body>
</html>
`))

// homePage is the data rendered into homeTemplate.
type homePage struct {
	Environment string
	Hostname    string
	Version     string
	Links       []status.Endpoint
}

// HomeHandler renders the HTML landing page at "/".
type HomeHandler struct {
	environment string
	hostname    func() (string, error)
}

// NewHomeHandler creates the landing page handler.
func NewHomeHandler(environment string) *HomeHandler {
	return &HomeHandler{environment: environment, hostname: os.Hostname}
}

// Home handles GET /.
// The page links every catalog endpoint except itself.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	logger.Infof("Request to / from %s", c.IP())

	hostname, err := h.hostname()
	if err != nil {
		hostname = "unknown"
	}

	page := homePage{
		Environment: h.environment,
		Hostname:    hostname,
		Version:     version.Version,
	}
	for _, e := range status.Endpoints {
		if e.Path != "/" {
			page.Links = append(page.Links, e)
		}
	}

	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, page); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
