package validation

// SignupInput はサインアップペイロードのバリデーション対象。
type SignupInput struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// LoginInput はログインペイロードのバリデーション対象。
type LoginInput struct {
	Email    string
	Password string
}

// CreateUserInput は認証済みユーザー作成ペイロードのバリデーション対象。
type CreateUserInput struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// UpdateUserInput は認証済みユーザー更新ペイロードのバリデーション対象。
// nilのフィールドは「未指定」を意味し、検証をスキップする。
type UpdateUserInput struct {
	Username *string
	Email    *string
	Phone    *string
	Password *string
}

// ValidateSignup はサインアップペイロードを検証する。
// 全フィールド必須: username 5〜30文字、email構文、phone数字10桁、password 6文字以上。
func ValidateSignup(in SignupInput) *Violation {
	if v := requiredRule("username", in.Username); v != nil {
		return v
	}
	if v := minLenRule("username", in.Username, 5); v != nil {
		return v
	}
	if v := maxLenRule("username", in.Username, 30); v != nil {
		return v
	}
	if v := requiredRule("email", in.Email); v != nil {
		return v
	}
	if v := emailRule("email", in.Email); v != nil {
		return v
	}
	if v := requiredRule("phone", in.Phone); v != nil {
		return v
	}
	if v := digitsRule("phone", in.Phone, 10); v != nil {
		return v
	}
	if v := requiredRule("password", in.Password); v != nil {
		return v
	}
	if v := minLenRule("password", in.Password, 6); v != nil {
		return v
	}
	return nil
}

// ValidateLogin はログインペイロードを検証する。
// email構文とpassword非空のみを要求する。
func ValidateLogin(in LoginInput) *Violation {
	if v := requiredRule("email", in.Email); v != nil {
		return v
	}
	if v := emailRule("email", in.Email); v != nil {
		return v
	}
	if v := requiredRule("password", in.Password); v != nil {
		return v
	}
	return nil
}

// ValidateCreateUser はユーザー作成ペイロードを検証する。
// 全フィールド必須: username 3〜30文字、email構文、phone数字10桁、password 6文字以上。
func ValidateCreateUser(in CreateUserInput) *Violation {
	if v := requiredRule("username", in.Username); v != nil {
		return v
	}
	if v := minLenRule("username", in.Username, 3); v != nil {
		return v
	}
	if v := maxLenRule("username", in.Username, 30); v != nil {
		return v
	}
	if v := requiredRule("email", in.Email); v != nil {
		return v
	}
	if v := emailRule("email", in.Email); v != nil {
		return v
	}
	if v := requiredRule("phone", in.Phone); v != nil {
		return v
	}
	if v := digitsRule("phone", in.Phone, 10); v != nil {
		return v
	}
	if v := requiredRule("password", in.Password); v != nil {
		return v
	}
	if v := minLenRule("password", in.Password, 6); v != nil {
		return v
	}
	return nil
}

// ValidateUpdateUser はユーザー更新ペイロードを検証する。
// フィールドはすべて任意だが、指定された場合はCreateと同じ制約を適用する。
func ValidateUpdateUser(in UpdateUserInput) *Violation {
	if in.Username != nil {
		if v := requiredRule("username", *in.Username); v != nil {
			return v
		}
		if v := minLenRule("username", *in.Username, 3); v != nil {
			return v
		}
		if v := maxLenRule("username", *in.Username, 30); v != nil {
			return v
		}
	}
	if in.Email != nil {
		if v := emailRule("email", *in.Email); v != nil {
			return v
		}
	}
	if in.Phone != nil {
		if v := digitsRule("phone", *in.Phone, 10); v != nil {
			return v
		}
	}
	if in.Password != nil {
		if v := minLenRule("password", *in.Password, 6); v != nil {
			return v
		}
	}
	return nil
}
