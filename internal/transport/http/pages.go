package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The admin area is two server-rendered pages. The shell page carries the
// client-side route guard: it renders a spinner while the auth check is
// pending, swaps in the protected content when the check resolves true, and
// redirects to the login page on false or on any transport error. The login
// page always renders so a failed check can never redirect in a loop.

var adminLoginPageHTML = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>تسجيل الدخول</title>
<style>
body { font-family: Tahoma, Arial, sans-serif; margin: 0; background: #0f172a; color: #e2e8f0; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.card { background: #1e293b; padding: 32px; border-radius: 12px; width: 90%; max-width: 380px; box-shadow: 0 10px 40px rgba(0,0,0,0.4); }
h1 { margin-top: 0; font-size: 22px; color: #38bdf8; }
input { width: 100%; padding: 10px; margin: 8px 0; border: 1px solid #334155; border-radius: 6px; background: #0f172a; color: #e2e8f0; box-sizing: border-box; }
button { width: 100%; margin-top: 12px; padding: 12px; font-size: 16px; border: none; border-radius: 6px; cursor: pointer; background: #0ea5e9; color: #fff; }
button:hover { background: #38bdf8; }
.error { color: #f87171; font-size: 14px; min-height: 20px; margin-top: 8px; }
</style>
</head>
<body>
<div class="card">
  <h1>لوحة التحكم</h1>
  <form onsubmit="return login(event)">
    <input type="text" name="username" placeholder="اسم المستخدم" required />
    <input type="password" name="password" placeholder="كلمة المرور" required />
    <button type="submit">تسجيل الدخول</button>
    <div id="error" class="error"></div>
  </form>
</div>
<script>
async function login(event) {
  event.preventDefault();
  const form = new FormData(event.target);
  try {
    const response = await fetch('/api/auth/login', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      credentials: 'same-origin',
      body: JSON.stringify(Object.fromEntries(form.entries()))
    });
    const data = await response.json();
    if (response.ok && data.success) {
      window.location.href = '/admin';
      return false;
    }
    document.getElementById('error').textContent = data.error || 'حدث خطأ، حاول مرة أخرى';
  } catch (err) {
    document.getElementById('error').textContent = 'تعذر الاتصال بالخادم، حاول مرة أخرى';
  }
  return false;
}
</script>
</body>
</html>`

var adminShellPageHTML = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>لوحة التحكم</title>
<style>
body { font-family: Tahoma, Arial, sans-serif; margin: 0; background: #0f172a; color: #e2e8f0; min-height: 100vh; }
#pending { display: flex; min-height: 100vh; align-items: center; justify-content: center; }
.spinner { width: 48px; height: 48px; border: 5px solid #334155; border-top-color: #38bdf8; border-radius: 50%; animation: spin 0.8s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
#content { display: none; padding: 32px; }
h1 { color: #38bdf8; }
a { color: #38bdf8; }
button { padding: 8px 16px; border: none; border-radius: 6px; cursor: pointer; background: #0ea5e9; color: #fff; }
</style>
</head>
<body>
<div id="pending"><div class="spinner"></div></div>
<div id="content">
  <h1>لوحة التحكم</h1>
  <p><a href="/swagger/index.html">واجهة برمجة التطبيقات</a></p>
  <button onclick="logout()">تسجيل الخروج</button>
</div>
<script>
// Route guard: PENDING until the validator resolves, then either render the
// protected content or redirect. An error counts as not authenticated.
(async function guard() {
  try {
    const response = await fetch('/api/auth/check', { credentials: 'same-origin' });
    const data = await response.json();
    if (response.ok && data.authenticated) {
      document.getElementById('pending').style.display = 'none';
      document.getElementById('content').style.display = 'block';
      return;
    }
  } catch (err) {
    // fall through to redirect
  }
  window.location.href = '/admin/login';
})();

async function logout() {
  try {
    await fetch('/api/auth/logout', { method: 'POST', credentials: 'same-origin' });
  } catch (err) {
    // cookie is cleared server-side on a reachable server; redirect anyway
  }
  window.location.href = '/admin/login';
}
</script>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/admin/login", func(c echo.Context) error {
		return c.HTML(http.StatusOK, adminLoginPageHTML)
	})

	e.GET("/admin", func(c echo.Context) error {
		return c.HTML(http.StatusOK, adminShellPageHTML)
	})
}
