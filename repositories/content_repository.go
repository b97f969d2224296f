package repositories

import "giftcard-shop/models"

// ContentRepository serves the static copy of the storefront sections.
type ContentRepository struct{}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

func (r *ContentRepository) Features() []models.Feature {
	return []models.Feature{
		{Icon: "Smartphone", Title: "Быстрая доставка", Description: "Код карты приходит на email мгновенно после оплаты"},
		{Icon: "ShieldCheck", Title: "Безопасно", Description: "Официальные карты Apple с гарантией активации"},
		{Icon: "Gift", Title: "Удобный подарок", Description: "Идеальный вариант для любого повода и получателя"},
	}
}

func (r *ContentRepository) FAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "Как активировать карту?",
			Answer:   `Откройте App Store, нажмите на свой профиль, выберите "Погасить подарочную карту" и введите полученный код.`,
		},
		{
			Question: "Где можно использовать карту?",
			Answer:   "В App Store, iTunes Store, Apple Music, iCloud+ и для покупки подписок на сервисы Apple.",
		},
		{
			Question: "Есть ли срок действия карты?",
			Answer:   "Нет, карты Apple Gift Card не имеют срока действия и могут быть использованы в любое время.",
		},
		{
			Question: "Можно ли вернуть карту?",
			Answer:   "Электронные карты возврату не подлежат после получения кода активации.",
		},
		{
			Question: "Какие способы оплаты доступны?",
			Answer:   "Принимаем банковские карты Visa, Mastercard, МИР, а также электронные кошельки и СБП.",
		},
	}
}

func (r *ContentRepository) Steps() []models.Step {
	return []models.Step{
		{Number: 1, Title: "Выберите номинал", Description: "Доступны карты от 1 000 до 15 000 рублей. Выберите подходящую сумму в зависимости от ваших потребностей."},
		{Number: 2, Title: "Оплатите покупку", Description: "Безопасная оплата банковской картой, электронным кошельком или через СБП. Все транзакции защищены."},
		{Number: 3, Title: "Получите код", Description: "Код активации придет на указанный email в течение нескольких минут после успешной оплаты."},
		{Number: 4, Title: "Активируйте в App Store", Description: "Введите полученный код в вашем Apple ID и пользуйтесь всеми сервисами Apple без ограничений."},
	}
}
