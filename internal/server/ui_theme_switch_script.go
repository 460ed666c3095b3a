package server

const themeSwitchJS = `
const themeSwitchDefaultTimeoutMs = 10000;

function themeSwitchFailure(resp, text) {
  let payload = null;
  try {
    payload = text ? JSON.parse(text) : null;
  } catch (_) {
    payload = null;
  }
  if (payload && payload.success === true && resp.ok) return '';
  let detail = '';
  if (payload && payload.error) {
    detail = String(payload.error);
  } else if (!payload && text) {
    detail = String(text).trim().slice(0, 512);
  }
  return detail || ('HTTP ' + resp.status);
}

function postThemeSelection(state, profile) {
  const init = {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ profile: profile, data: {} }),
  };
  let timer = null;
  if (typeof AbortController === 'function' && typeof setTimeout === 'function' && state.timeoutMs > 0) {
    const ctrl = new AbortController();
    init.signal = ctrl.signal;
    timer = setTimeout(function () { ctrl.abort(); }, state.timeoutMs);
  }
  const settle = function () {
    if (timer !== null) clearTimeout(timer);
    timer = null;
  };
  const fail = function (err) {
    settle();
    if (err && err.name === 'AbortError') throw new Error('request timed out');
    throw err;
  };
  return Promise.resolve()
    .then(function () { return state.fetch(state.endpoint, init); })
    .then(function (resp) {
      return resp.text().then(function (text) {
        settle();
        const detail = themeSwitchFailure(resp, text);
        if (detail) throw new Error(detail);
      });
    }, fail)
    .then(null, fail);
}

function markThemeOptionBusy(state, profile, busy) {
  state.elements.forEach(function (el) {
    if (el.getAttribute('data-theme-profile') === profile) {
      el.setAttribute('aria-busy', busy ? 'true' : 'false');
    }
  });
}

function selectThemeProfile(state, profile) {
  if (state.busy) return Promise.resolve(false);
  if (!profile || profile === state.active) return Promise.resolve(false);
  if (state.profiles.indexOf(profile) < 0) return Promise.resolve(false);

  state.busy = true;
  markThemeOptionBusy(state, profile, true);
  return postThemeSelection(state, profile).then(function () {
    return true;
  }, function (err) {
    state.busy = false;
    markThemeOptionBusy(state, profile, false);
    const detail = err && err.message ? err.message : String(err);
    state.alert('Failed to switch theme: ' + detail);
    return false;
  }).then(function (saved) {
    // The switch is persisted from here on; reload errors are not switch failures.
    if (saved) {
      state.active = profile;
      state.reload();
    }
    return saved;
  });
}

function initThemeSwitch(root, opts) {
  const options = opts || {};
  const scope = root || document;
  if (scope.__sonicThemeSwitch) return scope.__sonicThemeSwitch;

  const state = {
    endpoint: options.endpoint || '/save_theme',
    active: options.active || '',
    timeoutMs: typeof options.timeoutMs === 'number' ? options.timeoutMs : themeSwitchDefaultTimeoutMs,
    fetch: options.fetch || function (url, init) { return window.fetch(url, init); },
    alert: options.alert || function (msg) { window.alert(msg); },
    reload: options.reload || function () { window.location.reload(); },
    busy: false,
    elements: [],
    profiles: [],
  };

  const nodes = scope.querySelectorAll('[data-theme-profile]');
  for (let i = 0; i < nodes.length; i++) {
    const el = nodes[i];
    const profile = el.getAttribute('data-theme-profile');
    state.elements.push(el);
    state.profiles.push(profile);
    el.addEventListener('click', function (ev) {
      if (ev && typeof ev.preventDefault === 'function') ev.preventDefault();
      selectThemeProfile(state, profile).then(null, function (err) {
        if (typeof console !== 'undefined' && console.error) console.error('theme reload failed', err);
      });
    });
  }

  const api = {
    state: state,
    select: function (profile) { return selectThemeProfile(state, profile); },
  };
  scope.__sonicThemeSwitch = api;
  return api;
}
`
