package helpers

import (
	"fmt"
	"html"
)

func BuildResetPasswordHTML(resetLink string, expiresIn int) string {
	link := html.EscapeString(resetLink)
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif;background:#f7f7f7;padding:0;margin:0;">
    <table width="100%%" bgcolor="#f7f7f7" cellpadding="0" cellspacing="0" style="padding:30px 0;">
      <tr>
        <td align="center">
          <table width="600" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:10px;box-shadow:0 2px 8px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da;margin-top:0;">Восстановление пароля</h2>
                <p style="font-size:16px;color:#333;">Чтобы задать новый пароль, перейдите по ссылке. Она действует %d мин.</p>
                <p>
                  <a href="%s" style="display:inline-block;padding:12px 24px;background:#2d74da;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;margin-top:16px;">
                    Сбросить пароль
                  </a>
                </p>
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  Если вы не запрашивали сброс, просто проигнорируйте это письмо.
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, expiresIn/60, link)
}

// MaskEmail оставляет первую букву локальной части: a***@example.com.
func MaskEmail(email string) string {
	at := -1
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			at = i
			break
		}
	}
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
