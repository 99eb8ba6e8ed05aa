package html

// APIDocsTemplate is the single page layout: a fixed navigation column next to
// the custom types reference and the schema sections grouped by module.
const APIDocsTemplate = `<!DOCTYPE html>
<html lang="{{.Doc.Labels.Language}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Doc.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        nav {
            position: fixed;
            top: 0;
            bottom: 0;
            left: 0;
            width: 280px;
            overflow-y: auto;
            background: #2c3e50;
            padding: 20px 0;
        }

        nav a, nav .nav-group {
            display: block;
            color: #dfe6ee;
            text-decoration: none;
            padding-top: 4px;
            padding-bottom: 4px;
            font-size: 0.92em;
        }

        nav .nav-group {
            color: #ffffff;
            font-weight: 600;
            margin-top: 12px;
        }

        nav a:hover {
            background: #34495e;
        }

        .nav-route {
            display: block;
            font-family: 'Courier New', monospace;
            font-size: 0.8em;
            opacity: 0.7;
        }

        main {
            margin-left: 280px;
            padding: 20px;
            max-width: 1200px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.9;
        }

        .card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .card h2, .group-title {
            color: #667eea;
            margin-bottom: 15px;
            font-size: 1.5em;
        }

        .type-entry {
            border-left: 4px solid #667eea;
            background: #f8f9fa;
            padding: 12px 15px;
            margin-bottom: 15px;
            border-radius: 6px;
        }

        .type-name {
            font-family: 'Courier New', monospace;
            font-weight: 600;
            color: #e83e8c;
        }

        .endpoint {
            background: white;
            margin-bottom: 20px;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .endpoint-header {
            padding: 20px;
            background: #f8f9fa;
            border-bottom: 1px solid #e9ecef;
        }

        .endpoint-title {
            display: flex;
            align-items: center;
            gap: 15px;
            margin-bottom: 10px;
        }

        .method-badge {
            display: inline-block;
            padding: 6px 12px;
            border-radius: 4px;
            font-weight: bold;
            font-size: 0.85em;
            text-transform: uppercase;
            letter-spacing: 0.5px;
        }

        .method-get { background: #61affe; color: white; }
        .method-post { background: #49cc90; color: white; }
        .method-put { background: #fca130; color: white; }
        .method-delete { background: #f93e3e; color: white; }
        .method-patch { background: #50e3c2; color: white; }
        .method-default { background: #6c757d; color: white; }

        .endpoint-path {
            font-size: 1.3em;
            font-weight: 600;
            font-family: 'Courier New', monospace;
        }

        .endpoint-meta {
            font-size: 0.9em;
            color: #6c757d;
            margin-top: 5px;
        }

        .endpoint-body {
            padding: 20px;
        }

        .section-title {
            font-size: 1.1em;
            font-weight: 600;
            color: #495057;
            margin-bottom: 15px;
            padding-bottom: 8px;
            border-bottom: 2px solid #e9ecef;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 20px;
        }

        th {
            background: #f8f9fa;
            padding: 12px;
            text-align: left;
            font-weight: 600;
            color: #495057;
            border-bottom: 2px solid #dee2e6;
        }

        td {
            padding: 12px;
            border-bottom: 1px solid #e9ecef;
        }

        .param-name {
            font-family: 'Courier New', monospace;
            color: #667eea;
            font-weight: 600;
        }

        .param-type {
            font-family: 'Courier New', monospace;
            color: #e83e8c;
        }

        .no-default {
            color: #6c757d;
            font-style: italic;
        }

        .required-list li {
            margin-left: 20px;
            font-family: 'Courier New', monospace;
        }

        pre {
            background: #272822;
            color: #f8f8f2;
            padding: 12px;
            border-radius: 6px;
            overflow-x: auto;
            margin-bottom: 15px;
            font-size: 0.9em;
        }

        footer {
            text-align: center;
            padding: 30px 20px;
            color: #6c757d;
            margin-top: 40px;
        }
    </style>
</head>
<body>
    <nav>
        {{range .Nav}}
            {{if .Anchor}}
            <a href="{{anchorHref .Anchor}}" style="padding-left: {{indent .Indent}}px">{{.Title}}{{if .Route}}<span class="nav-route">{{.Route}}</span>{{end}}</a>
            {{else}}
            <div class="nav-group" style="padding-left: {{indent .Indent}}px">{{.Title}}</div>
            {{end}}
        {{end}}
    </nav>

    <main>
        <header>
            <h1>📘 {{.Doc.Title}}</h1>
            <p>{{.TotalSchemas}} APIs · {{.GeneratedAt}}</p>
        </header>

        <section class="card" id="{{.Doc.Nav.Types.Anchor}}">
            <h2>{{.Doc.Labels.CustomTypes}}</h2>
            {{range .Doc.Types}}
            <div class="type-entry">
                <div class="type-name">{{.Name}}</div>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
                {{if .Checker}}<pre class="prettyprint">{{.Checker}}</pre>{{end}}
                {{if .Formatter}}<pre class="prettyprint">{{.Formatter}}</pre>{{end}}
            </div>
            {{end}}
        </section>

        <h2 class="group-title">{{.Doc.Labels.APIList}}</h2>
        {{$labels := .Doc.Labels}}
        {{range .Doc.Groups}}
        <section class="group" data-group="{{.Name}}">
            {{range .Schemas}}
            <div class="endpoint" id="{{.ID}}">
                <div class="endpoint-header">
                    <div class="endpoint-title">
                        <span class="method-badge {{methodColor .Method}}">{{methodBadge .Method}}</span>
                        <span class="endpoint-path">{{.Path}}</span>
                    </div>
                    {{if .Title}}<h3>{{.Title}}</h3>{{end}}
                    {{if .Description}}<p>{{.Description}}</p>{{end}}
                    <div class="endpoint-meta">
                        {{$labels.Group}}<strong>{{.Group}}</strong>
                        {{if .SourceFile}} · {{$labels.SourceFile}}<strong>{{.SourceFile}}</strong>{{end}}
                    </div>
                </div>

                <div class="endpoint-body">
                    {{if .Params}}
                    <div class="section-title">{{$labels.RequestParams}}</div>
                    <table>
                        <tbody>
                            {{range .Params}}
                            <tr>
                                <td class="param-name">{{.Name}}</td>
                                <td class="param-type">{{.Type}}</td>
                                <td>{{.TypeDescription}}</td>
                                <td>{{.Comment}}</td>
                                <td>{{$labels.Default}} {{if .HasDefault}}<code>{{.DefaultText}}</code>{{else}}<span class="no-default">{{.DefaultText}}</span>{{end}}</td>
                            </tr>
                            {{end}}
                        </tbody>
                    </table>
                    {{end}}

                    {{if .Required}}
                    <div class="section-title">{{$labels.RequiredParams}}</div>
                    <ul class="required-list">
                        {{range .Required}}<li>{{.Label}}</li>{{end}}
                    </ul>
                    {{end}}

                    {{if .Examples}}
                    <div class="section-title">{{$labels.Examples}}</div>
                    {{range .Examples}}
                    <pre class="prettyprint">{{if .Comment}}{{.Comment}}
{{end}}{{.Input}}</pre>
                    <pre class="prettyprint">{{.Output}}</pre>
                    {{end}}
                    {{end}}
                </div>
            </div>
            {{end}}
        </section>
        {{end}}

        <footer>
            <p>Generated by <strong>apidocs</strong></p>
        </footer>
    </main>
    {{with .Doc.Highlight}}
    <script src="https://cdn.jsdelivr.net/gh/google/code-prettify@master/loader/prettify.js"></script>
    <script>
        setTimeout(function () {
            if (window.PR && document.querySelector({{.Selector}})) {
                PR.prettyPrint();
            }
        }, {{millis .Delay}});
    </script>
    {{end}}
</body>
</html>
`
