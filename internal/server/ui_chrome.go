package server

const uiShellChromeCSS = `
    :root {
      --line: rgba(0,0,0,.12);
      --card: rgba(255,255,255,.92);
      --muted: #6c757d;
    }
    * { box-sizing: border-box; }
    html, body { height: 100%; }
    body {
      margin: 0;
      font-family: "Avenir Next", "Segoe UI", sans-serif;
      color: var(--text-color);
      background-size: cover;
      background-position: center;
      background-attachment: fixed;
    }
    .sonic-titlebar {
      position: fixed;
      top: 0; left: 0; right: 0;
      height: 56px;
      display: flex;
      align-items: center;
      justify-content: space-between;
      padding: 0 20px;
      color: #ffffff;
      background-size: cover;
      background-position: center;
      z-index: 10;
    }
    .sonic-titlebar .brand { font-size: 20px; font-weight: 600; letter-spacing: .02em; }
    .sonic-titlebar a { color: #ffffff; text-decoration: none; }
    .sonic-sidebar {
      position: fixed;
      top: 56px; bottom: 0; left: 0;
      width: 220px;
      padding: 12px 0;
      overflow-y: auto;
      background-size: cover;
      background-position: center;
    }
    .sonic-sidebar a {
      display: block;
      padding: 9px 18px;
      color: #ffffff;
      text-decoration: none;
      border-left: 3px solid transparent;
    }
    .sonic-sidebar a:hover { background: rgba(255,255,255,.08); }
    .sonic-sidebar a.active {
      border-left-color: var(--primary-color);
      background: rgba(255,255,255,.12);
    }
    .sonic-content { margin: 56px 0 0 220px; padding: 24px; }
    .sonic-card {
      background: var(--card);
      border: 1px solid var(--line);
      border-radius: 12px;
      padding: 16px;
      margin-bottom: 16px;
    }
    h1 { margin: 0 0 12px; font-size: 24px; color: var(--primary-color); }
    .muted { color: var(--muted); font-size: 13px; }
    button {
      border: 1px solid var(--line);
      border-radius: 8px;
      padding: 8px 10px;
      font-size: 14px;
      background: #ffffff;
      color: var(--primary-color);
      cursor: pointer;
    }
    button:hover { border-color: var(--secondary-color); }
`

const uiThemeOptionsCSS = `
    .sonic-theme-grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
      gap: 12px;
    }
    .sonic-theme-option {
      display: flex;
      flex-direction: column;
      gap: 8px;
      text-align: left;
      padding: 12px;
    }
    .sonic-theme-option[aria-pressed="true"] {
      outline: 2px solid var(--primary-color);
      cursor: default;
    }
    .sonic-theme-option[aria-busy="true"] { opacity: .6; }
    .sonic-theme-option .name { font-weight: 600; }
    .sonic-swatches { display: flex; gap: 4px; }
    .sonic-swatch {
      width: 28px; height: 28px;
      border-radius: 6px;
      border: 1px solid var(--line);
      background-size: cover;
      background-position: center;
    }
`
