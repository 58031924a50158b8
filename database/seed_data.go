package database

// 首次启动时写入的默认数据

// DefaultMenus 默认一级菜单
var DefaultMenus = []MenuSeed{
	{Name: "Home", Order: 1},
	{Name: "Cused", Order: 2},
	{Name: "Cloud", Order: 3},
	{Name: "Soft", Order: 4},
	{Name: "Tools", Order: 5},
	{Name: "Other", Order: 6},
}

// DefaultSubMenus 默认子菜单
var DefaultSubMenus = []SubMenuSeed{
	{ParentMenu: "Cused", Name: "forum", Order: 1},
	{ParentMenu: "Cused", Name: "domain", Order: 2},
	{ParentMenu: "Cused", Name: "mail", Order: 3},
	{ParentMenu: "Other", Name: "AI chat", Order: 1},
	{ParentMenu: "Other", Name: "Platform", Order: 2},
	{ParentMenu: "Tools", Name: "Dev Tools", Order: 1},
	{ParentMenu: "Soft", Name: "Mac", Order: 1},
	{ParentMenu: "Soft", Name: "iOS", Order: 2},
	{ParentMenu: "Soft", Name: "Android", Order: 3},
	{ParentMenu: "Soft", Name: "Windows", Order: 4},
}

// DefaultCards 默认卡片，Menu 表示挂在一级菜单下，SubMenu 表示挂在子菜单下
var DefaultCards = []CardSeed{
	// Home
	{Menu: "Home", Title: "Nav", URL: "https://nav.hxjx.hidns.co/", LogoURL: "https://nav.hxjx.hidns.co/logo.svg", Desc: "个人导航站"},
	{Menu: "Home", Title: "Youtube", URL: "https://www.youtube.com", LogoURL: "https://img.icons8.com/ios-filled/100/ff1d06/youtube-play.png", Desc: "全球最大的视频社区"},
	{Menu: "Home", Title: "google cloud", URL: "https://cloud.google.com/?hl=zh-cn", LogoURL: "", Desc: ""},
	{Menu: "Home", Title: "GitHub", URL: "https://github.com", LogoURL: "", Desc: "全球最大的代码托管平台"},
	{Menu: "Home", Title: "ip.sb", URL: "https://ip.sb", LogoURL: "", Desc: "ip地址查询"},
	{Menu: "Home", Title: "Cloudflare", URL: "https://dash.cloudflare.com", LogoURL: "", Desc: "全球最大的cdn服务商"},
	{Menu: "Home", Title: "komari", URL: "https://km.363689.xyz", LogoURL: "", Desc: "komari面板监控"},
	{Menu: "Home", Title: "komari", URL: "https://km.hxjx.hidns.co", LogoURL: "https://nav.hxjx.hidns.co/icon/komari.svg", Desc: "komari面板监控"},
	{Menu: "Home", Title: "nezha", URL: "https://mb.hxjx.hidns.co", LogoURL: "https://nav.hxjx.hidns.co/icon/nezha2.png", Desc: "nezha面板监控"},
	{Menu: "Home", Title: "nezha", URL: "https://nzha.netlib.re", LogoURL: "https://nav.hxjx.hidns.co/icon/nezha.png", Desc: "nezha面板监控"},
	{Menu: "Home", Title: "nezha", URL: "https://nz.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/nz.svg", Desc: "nezha面板监控"},
	{Menu: "Home", Title: "服务到期监控", URL: "https://sak.wwr.qzz.io", LogoURL: "https://nav.hxjx.hidns.co/icon/jk.svg", Desc: "服务器到期监控提醒"},
	{Menu: "Home", Title: "域名到期管理", URL: "https://dak.wwr.qzz.io", LogoURL: "https://nav.hxjx.hidns.co/icon/jk.svg", Desc: "域名到期管理提醒"},
	{Menu: "Home", Title: "blog-hexo", URL: "https://blog.hxjx.hidns.co", LogoURL: "https://nav.hxjx.hidns.co/icon/hexo.svg", Desc: "hexo博客"},
	{Menu: "Home", Title: "blog-typecho", URL: "https://to.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/blog.svg", Desc: "typecho博客"},
	{Menu: "Home", Title: "blog-typecho", URL: "https://blog.hxjx.hidns.vip", LogoURL: "https://nav.hxjx.hidns.co/icon/blog.svg", Desc: "typecho博客"},
	{Menu: "Home", Title: "blog-next", URL: "https://blog.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/next.png", Desc: "next博客"},
	{Menu: "Home", Title: "img", URL: "https://img.hxjx.hidns.co", LogoURL: "https://nav.hxjx.hidns.co/icon/img.png", Desc: "图床"},
	{Menu: "Home", Title: "sub", URL: "https://sub.ab12.dpdns.org/admin", LogoURL: "https://nav.hxjx.hidns.co/icon/sub.png", Desc: "订阅提醒"},
	{Menu: "Home", Title: "openlist", URL: "https://openlist.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/oplist.svg", Desc: "openlist服务"},
	{Menu: "Home", Title: "oplist", URL: "https://oplist.hxjx.hidns.co", LogoURL: "https://nav.hxjx.hidns.co/icon/oplist.svg", Desc: "openlist服务"},
	{Menu: "Home", Title: "alist", URL: "https://alist.alistv.netlib.re", LogoURL: "https://nav.hxjx.hidns.co/icon/alist.svg", Desc: "alist服务"},
	{Menu: "Home", Title: "TXT", URL: "https://txt.wwp.qzz.io/xxsky", LogoURL: "https://nav.hxjx.hidns.co/icon/txt.svg", Desc: "在线文本"},
	{Menu: "Home", Title: "TXT", URL: "https://txt.wwo.qzz.io/xxsky", LogoURL: "https://nav.hxjx.hidns.co/icon/txt.svg", Desc: "在线文本"},
	{Menu: "Home", Title: "ssh-v4", URL: "https://ssh.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/ssh.png", Desc: "ipv4的在线ssh"},
	{Menu: "Home", Title: "TV", URL: "https://tv.363689.xyz", LogoURL: "https://nav.hxjx.hidns.co/icon/tv.png", Desc: "moontv"},
	{Menu: "Home", Title: "订阅转换", URL: "https://sub.363689.xyz/xu", LogoURL: "https://nav.hxjx.hidns.co/icon/sub.svg", Desc: "节点订阅转换"},
	{Menu: "Home", Title: "订阅转换", URL: "https://sub.hxjx.qzz.io/xu", LogoURL: "https://nav.hxjx.hidns.co/icon/sub.svg", Desc: "节点订阅转换"},

	// forum
	{SubMenu: "forum", Title: "NodeSeek", URL: "https://www.nodeseek.com", LogoURL: "https://www.nodeseek.com/static/image/favicon/favicon-32x32.png", Desc: "主机论坛"},
	{SubMenu: "forum", Title: "Linux do", URL: "https://linux.do", LogoURL: "https://linux.do/uploads/default/optimized/3X/9/d/9dd49731091ce8656e94433a26a3ef36062b3994_2_32x32.png", Desc: "新的理想型社区"},
	{SubMenu: "forum", Title: "mjjbox", URL: "https://mjjbox.com", LogoURL: "https://mjjbox.com/uploads/default/optimized/1X/9968c7be9b329bbd201860bf8aede029a2521934_2_32x32.png", Desc: "mjj论坛"},
	{SubMenu: "forum", Title: "mjjvm", URL: "https://www.mjjvm.com", LogoURL: "", Desc: "mjjvm后台"},
	{SubMenu: "forum", Title: "netjett", URL: "https://netjett.com", LogoURL: "", Desc: "netjett论坛"},
	{SubMenu: "forum", Title: "runfreecloud", URL: "https://run.freecloud.ltd", LogoURL: "", Desc: "runfreecloud签到"},
	{SubMenu: "forum", Title: "leaflow", URL: "https://leaflow.net", LogoURL: "", Desc: "leaflow容器"},

	// domain
	{SubMenu: "domain", Title: "域名检查", URL: "https://who.cx", LogoURL: "", Desc: "域名可用性查询"},
	{SubMenu: "domain", Title: "域名比价", URL: "https://www.whois.com", LogoURL: "", Desc: "域名价格比较"},
	{SubMenu: "domain", Title: "netlib.re", URL: "https://www.netlib.re", LogoURL: "", Desc: "免费域名"},
	{SubMenu: "domain", Title: "hidoha", URL: "https://www.hidoha.net", LogoURL: "", Desc: "免费域名"},
	{SubMenu: "domain", Title: "zoneabc", URL: "https://zoneabc.net", LogoURL: "", Desc: "免费域名"},
	{SubMenu: "domain", Title: "dnshe", URL: "https://my.dnshe.com/index.php", LogoURL: "", Desc: "免费域名"},
	{SubMenu: "domain", Title: "digitalplat", URL: "https://digitalplat.org", LogoURL: "", Desc: "免费域名"},
	{SubMenu: "domain", Title: "aibo", URL: "https://domain.aiboculture.com", LogoURL: "", Desc: "免费域名"},

	// mail
	{SubMenu: "mail", Title: "Gmail", URL: "https://mail.google.com", LogoURL: "https://ssl.gstatic.com/ui/v1/icons/mail/rfr/gmail.ico", Desc: "Google邮箱"},
	{SubMenu: "mail", Title: "Outlook", URL: "https://outlook.live.com", LogoURL: "https://img.icons8.com/color/256/ms-outlook.png", Desc: "微软Outlook邮箱"},
	{SubMenu: "mail", Title: "Proton Mail", URL: "https://account.proton.me", LogoURL: "https://account.proton.me/assets/apple-touch-icon-120x120.png", Desc: "安全加密邮箱"},
	{SubMenu: "mail", Title: "QQ邮箱", URL: "https://mail.qq.com", LogoURL: "https://mail.qq.com/zh_CN/htmledition/images/favicon/qqmail_favicon_96h.png", Desc: "腾讯QQ邮箱"},
	{SubMenu: "mail", Title: "雅虎邮箱", URL: "https://mail.yahoo.com", LogoURL: "https://img.icons8.com/color/240/yahoo--v2.png", Desc: "雅虎邮箱"},
	{SubMenu: "mail", Title: "10分钟临时邮箱", URL: "https://linshiyouxiang.net", LogoURL: "https://linshiyouxiang.net/static/index/zh/images/favicon.ico", Desc: "10分钟临时邮箱"},
	{SubMenu: "mail", Title: "cm.edu.kg", URL: "https://mail.cm.edu.kg", LogoURL: "", Desc: "教育域名邮箱"},
	{SubMenu: "mail", Title: "cnmb.win", URL: "https://cnmb.wint", LogoURL: "", Desc: "域名邮箱"},

	// AI chat
	{SubMenu: "AI chat", Title: "ChatGPT", URL: "https://chat.openai.com", LogoURL: "https://cdn.oaistatic.com/assets/favicon-eex17e9e.ico", Desc: "OpenAI官方AI对话"},
	{SubMenu: "AI chat", Title: "Deepseek", URL: "https://www.deepseek.com", LogoURL: "https://cdn.deepseek.com/chat/icon.png", Desc: "Deepseek AI搜索"},
	{SubMenu: "AI chat", Title: "Claude", URL: "https://claude.ai", LogoURL: "https://img.icons8.com/fluency/240/claude-ai.png", Desc: "Anthropic Claude AI"},
	{SubMenu: "AI chat", Title: "Google Gemini", URL: "https://gemini.google.com", LogoURL: "https://www.gstatic.com/lamda/images/gemini_sparkle_aurora_33f86dc0c0257da337c63.svg", Desc: "Google Gemini大模型"},
	{SubMenu: "AI chat", Title: "阿里千问", URL: "https://chat.qwenlm.ai", LogoURL: "https://g.alicdn.com/qwenweb/qwen-ai-fe/0.0.11/favicon.ico", Desc: "阿里云千问大模型"},
	{SubMenu: "AI chat", Title: "Kimi", URL: "https://www.kimi.com", LogoURL: "", Desc: "月之暗面Moonshot AI"},

	// Platform
	{SubMenu: "Platform", Title: "ChatGPT", URL: "https://chat.openai.com", LogoURL: "https://cdn.oaistatic.com/assets/favicon-eex17e9e.ico", Desc: "人工智能AI聊天机器人"},
	{SubMenu: "Platform", Title: "Huggingface", URL: "https://huggingface.co", LogoURL: "", Desc: "全球最大的开源模型托管平台"},
	{SubMenu: "Platform", Title: "ITDOG", URL: "https://www.itdog.cn/tcping", LogoURL: "", Desc: "在线tcping"},
	{SubMenu: "Platform", Title: "Ping0", URL: "https://ping0.cc", LogoURL: "", Desc: "ip地址查询"},
	{SubMenu: "Platform", Title: "浏览器指纹", URL: "https://www.browserscan.net/zh", LogoURL: "", Desc: "浏览器指纹查询"},
	{SubMenu: "Platform", Title: "nezha面板", URL: "https://ssss.nyc.mn", LogoURL: "https://nezha.wiki/logo.png", Desc: "nezha面板"},
	{SubMenu: "Platform", Title: "Api测试", URL: "https://hoppscotch.io", LogoURL: "", Desc: "在线api测试工具"},
	{SubMenu: "Platform", Title: "在线音乐", URL: "https://music.eooce.com", LogoURL: "https://p3.music.126.net/tBTNafgjNnTL1KlZMt7lVA==/18885211718935735.jpg", Desc: "在线音乐"},
	{SubMenu: "Platform", Title: "在线电影", URL: "https://libretv.eooce.com", LogoURL: "https://img.icons8.com/color/240/cinema---v1.png", Desc: "在线电影"},
	{SubMenu: "Platform", Title: "免费接码", URL: "https://www.smsonline.cloud/zh", LogoURL: "", Desc: "免费接收短信验证码"},
	{SubMenu: "Platform", Title: "订阅转换", URL: "https://sublink.eooce.com", LogoURL: "https://img.icons8.com/color/96/link--v1.png", Desc: "最好用的订阅转换工具"},
	{SubMenu: "Platform", Title: "webssh", URL: "https://ssh.eooce.com", LogoURL: "https://img.icons8.com/fluency/240/ssh.png", Desc: "最好用的webssh终端管理工具"},
	{SubMenu: "Platform", Title: "文件快递柜", URL: "https://filebox.nnuu.nyc.mn", LogoURL: "https://img.icons8.com/nolan/256/document.png", Desc: "文件输出分享"},
	{SubMenu: "Platform", Title: "真实地址生成", URL: "https://address.nnuu.nyc.mn", LogoURL: "https://static11.meiguodizhi.com/favicon.ico", Desc: "基于当前ip生成真实的地址"},

	// Cloud
	{Menu: "Cloud", Title: "阿里云", URL: "https://www.aliyun.com", LogoURL: "https://img.alicdn.com/tfs/TB1_ZXuNcfpK1RjSZFOXXa6nFXa-32-32.ico", Desc: "阿里云官网"},
	{Menu: "Cloud", Title: "腾讯云", URL: "https://cloud.tencent.com", LogoURL: "", Desc: "腾讯云官网"},
	{Menu: "Cloud", Title: "甲骨文云", URL: "https://cloud.oracle.com", LogoURL: "", Desc: "Oracle Cloud"},
	{Menu: "Cloud", Title: "亚马逊云", URL: "https://aws.amazon.com", LogoURL: "https://img.icons8.com/color/144/amazon-web-services.png", Desc: "Amazon AWS"},
	{Menu: "Cloud", Title: "DigitalOcean", URL: "https://www.digitalocean.com", LogoURL: "https://www.digitalocean.com/_next/static/media/apple-touch-icon.d7edaa01.png", Desc: "DigitalOcean VPS"},
	{Menu: "Cloud", Title: "Vultr", URL: "https://www.vultr.com", LogoURL: "", Desc: "Vultr VPS"},

	// Soft
	{Menu: "Soft", Title: "Hellowindows", URL: "https://hellowindows.cn", LogoURL: "https://hellowindows.cn/logo-s.png", Desc: "windows系统及office下载"},
	{Menu: "Soft", Title: "奇迹秀", URL: "https://www.qijishow.com/down", LogoURL: "https://www.qijishow.com/img/ico.ico", Desc: "设计师的百宝箱"},
	{Menu: "Soft", Title: "易破解", URL: "https://www.ypojie.com", LogoURL: "https://www.ypojie.com/favicon.ico", Desc: "精品windows软件"},
	{Menu: "Soft", Title: "软件先锋", URL: "https://topcracked.com", LogoURL: "https://cdn.mac89.com/win_macxf_node/static/favicon.ico", Desc: "精品windows软件"},
	{Menu: "Soft", Title: "Macwk", URL: "https://www.macwk.com", LogoURL: "https://www.macwk.com/favicon-32x32.ico", Desc: "精品Mac软件"},
	{Menu: "Soft", Title: "Macsc", URL: "https://mac.macsc.com", LogoURL: "https://cdn.mac89.com/macsc_node/static/favicon.ico", Desc: ""},

	// Tools
	{Menu: "Tools", Title: "JSON工具", URL: "https://www.json.cn", LogoURL: "https://img.icons8.com/nolan/128/json.png", Desc: "JSON格式化/校验"},
	{Menu: "Tools", Title: "base64工具", URL: "https://www.qqxiuzi.cn/bianma/base64.htm", LogoURL: "https://cdn.base64decode.org/assets/images/b64-180.webp", Desc: "在线base64编码解码"},
	{Menu: "Tools", Title: "二维码生成", URL: "https://cli.im", LogoURL: "https://img.icons8.com/fluency/96/qr-code.png", Desc: "二维码生成工具"},
	{Menu: "Tools", Title: "JS混淆", URL: "https://obfuscator.io", LogoURL: "https://img.icons8.com/color/240/javascript--v1.png", Desc: "在线Javascript代码混淆"},
	{Menu: "Tools", Title: "Python混淆", URL: "https://freecodingtools.org/tools/obfuscator/python", LogoURL: "https://img.icons8.com/color/240/python--v1.png", Desc: "在线python代码混淆"},
	{Menu: "Tools", Title: "Remove.photos", URL: "https://remove.photos/zh-cn", LogoURL: "https://img.icons8.com/doodle/192/picture.png", Desc: "一键抠图"},
	{Menu: "Tools", Title: "favicon", URL: "https://tool.lu/favicon", LogoURL: "", Desc: "favicon图标生成"},
	{Menu: "Tools", Title: "Coolors", URL: "https://ailongmiao.com/coolors-co", LogoURL: "", Desc: "在线配色"},

	// Dev Tools
	{SubMenu: "Dev Tools", Title: "Uiverse", URL: "https://uiverse.io/elements", LogoURL: "https://img.icons8.com/fluency/96/web-design.png", Desc: "CSS动画和设计元素"},
	{SubMenu: "Dev Tools", Title: "Icons8", URL: "https://igoutu.cn/icons", LogoURL: "https://maxst.icons8.com/vue-static/landings/primary-landings/favs/icons8_fav_32×32.png", Desc: "免费图标和设计资源"},
}

// DefaultFriends 默认友情链接
var DefaultFriends = []FriendSeed{
	{Title: "Noodseek图床", URL: "https://www.nodeimage.com", Logo: "https://www.nodeseek.com/static/image/favicon/favicon-32x32.png"},
	{Title: "Font Awesome", URL: "https://fontawesome.com", Logo: "https://fontawesome.com/favicon.ico"},
}
