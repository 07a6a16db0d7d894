package webui

import "html/template"

// appScript is the browser-side glue shared by the dashboard and admin
// pages. Rendering happens server-side; this script only swaps fragments,
// drives the map widget and runs the chat send loop.
const appScript = template.JS(`
async function fetchJSON(url, opts) {
  opts = opts || {};
  opts.headers = Object.assign({'Content-Type': 'application/json'}, opts.headers || {});
  const res = await fetch(url, opts);
  if (!res.ok) {
    let detail = String(res.status);
    try { detail = res.status + ': ' + await res.text(); } catch (e) {}
    throw new Error('Request failed: ' + detail);
  }
  return res.json();
}

// Single-acquisition map handle: calling initMap twice is a no-op.
let mapHandle = null;
function initMap(markers) {
  const el = document.getElementById('map');
  if (!el || mapHandle) return;
  if (!el.style.height) el.style.height = '420px';
  try {
    mapHandle = L.map(el).setView([20.0, 40.0], 2);
  } catch (err) {
    console.error('map init failed', err);
    return;
  }
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(mapHandle);
  // Recalculate once the surrounding layout has settled.
  setTimeout(() => mapHandle.invalidateSize(), 200);
  for (const m of markers) {
    L.marker([m.lat, m.lon]).addTo(mapHandle).bindPopup(m.popup);
  }
}

async function refreshDevices() {
  const el = document.getElementById('device-list');
  if (!el) return;
  try {
    const res = await fetch('/ui/devices');
    if (!res.ok) throw new Error('HTTP ' + res.status);
    el.innerHTML = await res.text();
  } catch (err) {
    console.error('failed to load devices', err);
    el.innerHTML = '<p class="error">Failed to load devices.</p>';
  }
}

function initDeviceList() {
  const el = document.getElementById('device-list');
  if (!el) return;
  refreshDevices();
  el.addEventListener('click', async (ev) => {
    const btn = ev.target.closest('.toggle-btn');
    if (!btn) return;
    btn.disabled = true;
    try {
      await fetchJSON('/api/device/' + btn.dataset.id + '/toggle', {method: 'POST', body: '{}'});
    } catch (err) {
      console.error('toggle failed', err);
    }
    await refreshDevices();
  });
}

async function swapUsers(url) {
  const el = document.getElementById('users');
  try {
    const res = await fetch(url);
    if (!res.ok) throw new Error('HTTP ' + res.status);
    el.innerHTML = await res.text();
  } catch (err) {
    console.error('failed to load users', err);
    el.innerHTML = '<p class="error">Failed to load users.</p>';
  }
}

function initUsersTable() {
  const el = document.getElementById('users');
  if (!el) return;
  el.innerHTML = '<p class="loading">Loading users&hellip;</p>';
  swapUsers('/ui/users');
  const search = document.getElementById('user-search');
  if (search) {
    // Filter requests hit the server-side snapshot, not the database.
    search.addEventListener('input', () => {
      swapUsers('/ui/users?q=' + encodeURIComponent(search.value));
    });
  }
  el.addEventListener('click', (ev) => {
    const btn = ev.target.closest('.pick-btn');
    if (!btn) return;
    const target = document.getElementById(btn.dataset.pickTarget);
    if (target) target.value = btn.dataset.userId;
  });
}

function bindForm(id, url, build, onSuccess) {
  const form = document.getElementById(id);
  if (!form) return;
  form.addEventListener('submit', async (ev) => {
    ev.preventDefault();
    try {
      const data = await fetchJSON(url, {
        method: 'POST',
        body: JSON.stringify(build(new FormData(form)))
      });
      onSuccess(data, form);
    } catch (err) {
      alert(err.message);
    }
  });
}

function bindAdminForms() {
  bindForm('create-location-form', '/api/admin/create_location',
    (f) => ({
      name: f.get('name'),
      country: f.get('country'),
      lat: parseFloat(f.get('lat')),
      lon: parseFloat(f.get('lon'))
    }),
    () => location.reload());
  bindForm('create-device-form', '/api/admin/create_device',
    (f) => ({
      name: f.get('name'),
      type: f.get('type'),
      location_id: parseInt(f.get('location_id'), 10)
    }),
    (data, form) => { alert('Device ' + data.device_id + ' created'); form.reset(); refreshDevices(); });
  bindForm('assign-user-form', '/api/admin/assign_user_location',
    (f) => ({
      user_id: parseInt(f.get('user_id'), 10),
      location_id: parseInt(f.get('location_id'), 10)
    }),
    (data, form) => { alert('User assigned'); form.reset(); swapUsers('/ui/users'); });
}

function initChat(cfg) {
  const log = document.getElementById(cfg.logId);
  const input = document.getElementById(cfg.inputId);
  const send = document.getElementById(cfg.sendId);
  if (!log || !input || !send) return;

  if (cfg.variant === 'drawer') {
    const fab = document.getElementById(cfg.fabId);
    const drawer = document.getElementById(cfg.drawerId);
    const close = document.getElementById(cfg.closeId);
    if (fab && drawer) fab.addEventListener('click', () => {
      drawer.hidden = false;
      fab.hidden = true;
      input.focus();
    });
    if (close && drawer) close.addEventListener('click', () => {
      drawer.hidden = true;
      const fab2 = document.getElementById(cfg.fabId);
      if (fab2) fab2.hidden = false;
    });
  }

  function bubble(cls, text, id) {
    const div = document.createElement('div');
    div.className = 'bubble ' + cls;
    if (id) div.id = id;
    div.textContent = text;
    log.appendChild(div);
    log.scrollTop = log.scrollHeight;
    return div;
  }

  async function sendMessage() {
    const text = input.value.trim();
    if (!text) return;
    input.value = '';
    bubble('me', text);
    const pendingId = cfg.logId + '-pending-' + Date.now();
    bubble('bot pending', 'Thinking…', pendingId);
    let reply;
    try {
      const data = await fetchJSON(cfg.endpoint, {
        method: 'POST',
        body: JSON.stringify({message: text})
      });
      reply = data.ok ? data.answer : 'Error: ' + (data.error || 'unknown error');
    } catch (err) {
      reply = err.message;
    }
    const pending = document.getElementById(pendingId);
    if (pending) pending.remove();
    bubble('bot', reply);
  }

  send.addEventListener('click', sendMessage);
  input.addEventListener('keydown', (ev) => {
    if (ev.key === 'Enter') sendMessage();
  });
}

document.addEventListener('DOMContentLoaded', () => {
  initDeviceList();
  initUsersTable();
  bindAdminForms();
});
`)
