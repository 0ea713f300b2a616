package helpers

import "fmt"

// BuildPasswordResetHTML — письмо со ссылкой восстановления пароля.
// Ссылка живёт ограниченное время и работает один раз.
func BuildPasswordResetHTML(resetLink string) string {
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
                <p style="font-size:16px;color:#333;">Вы запросили сброс пароля. Нажмите кнопку ниже, чтобы задать новый пароль.</p>
                <p>
                  <a href="%s" style="display:inline-block;padding:12px 24px;background:#2d74da;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;margin-top:16px;">
                    Сбросить пароль
                  </a>
                </p>
                <p style="font-size:12px;color:#999;">Если кнопка не работает — скопируйте ссылку: %s</p>
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  Ссылка действительна 10 минут и сработает только один раз.<br>
                  <i>Если вы не запрашивали сброс — просто проигнорируйте это письмо.</i>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, resetLink, resetLink)
}

// BuildWelcomeHTML — приветственное письмо после регистрации.
func BuildWelcomeHTML(username string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif;background:#f7f7f7;padding:0;margin:0;">
    <table width="100%%" bgcolor="#f7f7f7" cellpadding="0" cellspacing="0" style="padding:30px 0;">
      <tr>
        <td align="center">
          <table width="600" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:10px;box-shadow:0 2px 8px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da;margin-top:0;">Добро пожаловать, %s!</h2>
                <p style="font-size:16px;color:#333;">Регистрация прошла успешно — теперь можно войти в свой аккаунт.</p>
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  <i>Если вы не регистрировались — напишите в поддержку.</i>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, username)
}
