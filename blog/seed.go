package blog

// seedPosts returns the factory-default posts shown before any content has
// been saved. The collection acts as demo content on first run.
func seedPosts() Posts {
	return Posts{
		"Hành trình lập trình của một developer 16 tuổi": {
			Date:        "Sắp ra mắt",
			TimeToRead:  "5",
			Link:        "https://caothong.is-a.dev/blog/hanh-trinh-lap-trinh",
			Description: "Chia sẻ câu chuyện cá nhân về hành trình học lập trình từ sớm, những khó khăn gặp phải và cách vượt qua.",
			Content: `# Chào mừng đến với hành trình lập trình của tôi!

Xin chào! Tôi là **Hoàng Cao Thống**, một developer 16 tuổi đang đam mê với việc tạo ra những sản phẩm công nghệ có ích.

## Khởi đầu từ con số 0

Hành trình của tôi bắt đầu từ khi tôi 14 tuổi. Lúc đó, tôi chỉ biết sử dụng máy tính cơ bản và chẳng hiểu gì về lập trình.

> "Mọi chuyên gia đều từng là người mới bắt đầu"

## Tech Stack hiện tại

- **Next.js** - Framework React mạnh mẽ
- **TypeScript** - Type safety cho code chất lượng cao
- **Tailwind CSS** - Styling hiệu quả và responsive

Nếu bạn có câu hỏi gì, hãy liên hệ với tôi qua [contact@caothong.is-a.dev](mailto:contact@caothong.is-a.dev).`,
			Tags:     []string{"personal", "programming", "journey"},
			Status:   StatusPublished,
			Author:   "Hoàng Cao Thống",
			Image:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=400&fit=crop",
			ImageAlt: "Code trên màn hình laptop",
			Category: "Personal Story",
		},
		"Tư duy kinh doanh trong lập trình: Marketing + Code = Success": {
			Date:        "Ý tưởng",
			TimeToRead:  "6",
			Link:        "https://caothong.is-a.dev/blog/tu-duy-kinh-doanh",
			Description: "Khám phá cách kết hợp kỹ năng lập trình với tư duy kinh doanh để tạo ra những sản phẩm có thể bán được.",
			Content: `# Marketing + Code = Success

Là một developer trẻ, tôi nhận ra rằng **chỉ biết code thôi là chưa đủ**. Để tạo ra những sản phẩm thành công, bạn cần kết hợp kỹ năng lập trình với tư duy kinh doanh.

## Tại sao Developer cần hiểu về Business?

Nhiều developer tạo ra những sản phẩm kỹ thuật tuyệt vời nhưng... không ai sử dụng.

> **Vì họ build những thứ họ nghĩ mọi người cần, chứ không phải những thứ mọi người thực sự cần.**

## Framework: From Idea to Revenue

1. **Market Research** - nghiên cứu thị trường trước khi viết dòng code nào
2. **MVP Development** - phiên bản đơn giản nhất có thể bán được
3. **Customer Acquisition** - content marketing, SEO, community

Remember: **Great code + Great business = Great success**`,
			Tags:     []string{"business", "marketing", "entrepreneurship"},
			Status:   StatusDraft,
			Author:   "Hoàng Cao Thống",
			Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=400&fit=crop",
			ImageAlt: "Biểu đồ business và laptop",
			Category: "Business & Tech",
		},
	}
}
