// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// client screens and the TUI.
//
// Screens put these strings into dialogs, error views and toasts. Keeping
// them in one place keeps the wording consistent between screens.
package app

const (
	// MsgAnErrorHasOccurred is the title of every error dialog.
	MsgAnErrorHasOccurred = "Произошла ошибка"

	// MsgGenericError is shown when an operation failed for a reason the
	// client cannot describe better.
	MsgGenericError = "Что-то пошло не так. Попробуйте ещё раз."

	// MsgInternetRequired is shown when the server could not be reached.
	MsgInternetRequired = "Для этого действия требуется подключение к интернету."

	// MsgLoading is the text of the loading dialog and of the loading view.
	MsgLoading = "Загрузка..."

	// MsgSaving is shown while an attachment is uploaded.
	MsgSaving = "Сохранение..."

	// MsgDeleting is shown while an attachment is deleted.
	MsgDeleting = "Удаление..."

	// MsgMoving is shown while an item is moved into an organization.
	MsgMoving = "Перемещение..."

	// MsgItemNotFound is shown when the requested vault item does not exist.
	MsgItemNotFound = "Элемент не найден."

	// MsgNoOrganizations is shown when the user is not a member of any
	// organization.
	MsgNoOrganizations = "Вы не состоите ни в одной организации."

	// MsgSelectOneCollection is the validation error of an empty collection
	// selection.
	MsgSelectOneCollection = "Необходимо выбрать хотя бы одну коллекцию."

	// MsgItemMoved is the toast after a successful move.
	MsgItemMoved = "Элемент перемещён в организацию."

	// MsgNoFileChosen is the validation error of saving without a file.
	MsgNoFileChosen = "Файл не выбран."

	// MsgPremiumRequired is the validation error of a non-premium upload.
	MsgPremiumRequired = "Вложения доступны только с премиум-подпиской."

	// MsgMaxFileSize is the validation error of a file over the size limit.
	MsgMaxFileSize = "Максимальный размер файла 100 МБ."

	// MsgAttachmentSaved is the toast after a successful upload.
	MsgAttachmentSaved = "Вложение сохранено."

	// MsgAttachmentDeleted is the toast after a successful deletion.
	MsgAttachmentDeleted = "Вложение удалено."

	// MsgVerificationCodeSent is the toast after a two-factor e-mail was
	// sent again.
	MsgVerificationCodeSent = "Письмо с кодом подтверждения отправлено."

	// MsgVerificationEmailNotSent is shown when the e-mail could not be sent.
	MsgVerificationEmailNotSent = "Не удалось отправить письмо с кодом."

	// MsgInvalidVerificationCode is shown when the server rejected the code
	// without a reason.
	MsgInvalidVerificationCode = "Неверный код подтверждения."

	// MsgCaptchaTokenMissing is shown when the captcha callback returned no
	// token.
	MsgCaptchaTokenMissing = "Не удалось получить токен капчи."

	// MsgTwoFactorNotSupported is shown when the server asks for a second
	// factor while one is already being submitted.
	MsgTwoFactorNotSupported = "Требуется другой способ двухэтапной проверки."
)
