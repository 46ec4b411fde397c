/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for Akaylee Cracker session reports. Renders a
self-contained page with the session summary, search parameters, and the
recovered seed table.
*/

package reporting

// sessionTemplate is the HTML page for a single recovery session.
const sessionTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Akaylee Cracker - Session {{.SessionID}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
            padding: 30px;
        }

        .container {
            max-width: 1000px;
            margin: 0 auto;
        }

        .header {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            color: #718096;
            font-size: 1rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .stat-card h3 {
            color: #718096;
            font-size: 0.85rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            margin-bottom: 8px;
        }

        .stat-card .value {
            color: #4a5568;
            font-size: 1.6rem;
            font-weight: 700;
        }

        .results {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 15px;
            padding: 25px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .results h2 {
            color: #4a5568;
            margin-bottom: 15px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            text-align: left;
            padding: 10px 14px;
            border-bottom: 1px solid #e2e8f0;
            font-variant-numeric: tabular-nums;
        }

        th {
            color: #718096;
            font-size: 0.85rem;
            text-transform: uppercase;
        }

        .empty {
            color: #718096;
            font-style: italic;
            padding: 20px 0;
        }

        .badge {
            display: inline-block;
            padding: 4px 12px;
            border-radius: 999px;
            font-size: 0.85rem;
            font-weight: 600;
            background: #c6f6d5;
            color: #22543d;
        }

        .badge.cancelled {
            background: #fed7d7;
            color: #742a2a;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🔓 Akaylee Cracker</h1>
            <p>Session {{.SessionID}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}} &middot; v{{.Version}}</p>
            {{if .Cancelled}}<p><span class="badge cancelled">cancelled</span></p>
            {{else}}<p><span class="badge">completed</span></p>{{end}}
        </div>

        <div class="stats-grid">
            <div class="stat-card"><h3>Variant</h3><div class="value">{{.Variant}}</div></div>
            <div class="stat-card"><h3>Mode</h3><div class="value">{{.Mode}}</div></div>
            <div class="stat-card"><h3>Observations</h3><div class="value">{{.Observations}}</div></div>
            <div class="stat-card"><h3>Range</h3><div class="value">{{.Range.String}}</div></div>
            <div class="stat-card"><h3>Candidates Evaluated</h3><div class="value">{{.Evaluated}}</div></div>
            <div class="stat-card"><h3>Rate</h3><div class="value">{{printf "%.0f" .Rate}}/s</div></div>
            <div class="stat-card"><h3>Workers</h3><div class="value">{{.Workers}}</div></div>
            <div class="stat-card"><h3>Depth</h3><div class="value">{{.Depth}}</div></div>
        </div>

        <div class="results">
            <h2>🔑 Recovered Seeds</h2>
            {{if .StateRecovered}}
            <p class="empty">Internal state recovered directly; no seed search was necessary.</p>
            {{else if .Results}}
            <table>
                <tr><th>#</th><th>Seed</th><th>Hex</th><th>Confidence</th></tr>
                {{range $i, $r := .Results}}
                <tr><td>{{$i}}</td><td>{{$r.Seed}}</td><td>{{hex $r.Seed}}</td><td>{{pct $r.Confidence}}</td></tr>
                {{end}}
            </table>
            {{else}}
            <p class="empty">No seed cleared the {{pct .MinConfidence}} confidence threshold.</p>
            {{end}}
        </div>
    </div>
</body>
</html>`
