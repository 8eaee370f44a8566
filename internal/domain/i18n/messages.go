// internal/domain/i18n/messages.go
package i18n

// Fixed user-facing message catalog. Remote-call failures always surface the
// generic message; details stay in logs.

var remoteFailure = map[Locale]string{
	LocaleEN: "Something went wrong. Please try again.",
	LocaleLV: "Radās kļūda. Lūdzu, mēģiniet vēlreiz.",
	LocaleRU: "Что-то пошло не так. Попробуйте ещё раз.",
}

var checkoutSubject = map[Locale]string{
	LocaleEN: "Your Voltmart order is confirmed",
	LocaleLV: "Jūsu Voltmart pasūtījums ir apstiprināts",
	LocaleRU: "Ваш заказ Voltmart подтверждён",
}

var checkoutBody = map[Locale]string{
	LocaleEN: "Thank you for your order. We will contact you about delivery shortly.",
	LocaleLV: "Paldies par pasūtījumu. Mēs drīzumā sazināsimies par piegādi.",
	LocaleRU: "Спасибо за заказ. Мы скоро свяжемся с вами по поводу доставки.",
}

// RemoteFailure is the generic localized error shown when a remote call fails.
func RemoteFailure(l Locale) string { return pick(remoteFailure, l) }

// CheckoutSubject is the confirmation mail subject.
func CheckoutSubject(l Locale) string { return pick(checkoutSubject, l) }

// CheckoutBody is the confirmation mail body.
func CheckoutBody(l Locale) string { return pick(checkoutBody, l) }

func pick(m map[Locale]string, l Locale) string {
	if v, ok := m[l]; ok {
		return v
	}
	return m[DefaultLocale]
}
